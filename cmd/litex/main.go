package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/gubarz/litex/internal/config"
	"github.com/gubarz/litex/internal/emitter"
	"github.com/gubarz/litex/internal/extractor"
	"github.com/gubarz/litex/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var checkCmd = &cobra.Command{
	Use:   "check [input]",
	Short: "Verify the marker and closing backtick without writing",
	Long: `Runs the extraction against the input file and reports the region
offsets and size. Nothing is written; the exit status is non-zero
when the marker or the closing backtick is missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

var rootCmd = &cobra.Command{
	Use:   "litex [input]",
	Short: "Extract a template literal into a runnable file",
	Long: `Extracts the backtick-delimited template literal that follows a
marker substring and writes it out as a string declaration plus
a statement that prints it.

With no arguments it reads src/index.ts, looks for the
"const js =" marker and writes temp_eval.js.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(checkCmd)

	rootCmd.PersistentFlags().StringP("marker", "m", "", "Marker substring that opens the region")
	rootCmd.PersistentFlags().StringP("dest", "d", "", "Destination file for write mode")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output mode: write, print, copy")
	rootCmd.PersistentFlags().Bool("print", false, "Print the generated source (shorthand for -o print)")
	rootCmd.PersistentFlags().Bool("copy", false, "Copy the generated source (shorthand for -o copy)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress the summary line")
	rootCmd.PersistentFlags().BoolP("benchmark", "b", false, "Benchmark read and scan time and exit")

	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
	report.RefreshStyles()
}

// applyFlags merges the positional argument and flags into config and
// returns the resolved input path
func applyFlags(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		config.SetInput(args[0])
	}

	if m, _ := cmd.Flags().GetString("marker"); m != "" {
		config.SetMarker(m)
	}
	if d, _ := cmd.Flags().GetString("dest"); d != "" {
		config.SetDest(d)
	}

	// Handle output mode flags
	if p, _ := cmd.Flags().GetBool("print"); p {
		config.SetOutput("print")
	} else if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput("copy")
	} else if o, _ := cmd.Flags().GetString("output"); o != "" {
		config.SetOutput(o)
	}

	if q, _ := cmd.Flags().GetBool("quiet"); q {
		config.SetQuiet(true)
	}

	return config.GetInput()
}

func runExtract(cmd *cobra.Command, args []string) error {
	input := applyFlags(cmd, args)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}

	benchmark, _ := cmd.Flags().GetBool("benchmark")
	start := time.Now()

	res, err := extractor.Extract(string(data), config.GetMarker())
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	if benchmark {
		elapsed := time.Since(start)
		// Force GC and get memory stats
		runtime.GC()
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		fmt.Printf("Scanned %d bytes in %v\n", len(data), elapsed)
		fmt.Printf("Memory: Alloc=%dMB, TotalAlloc=%dMB, Sys=%dMB, HeapObjects=%d\n",
			m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024, m.HeapObjects)
		return nil
	}

	em := emitter.New(config.GetDest())
	if err := em.Emit(res.Content); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	report.Summary(input, len(res.Content), destinationLabel())
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	input := applyFlags(cmd, args)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}

	res, err := extractor.Extract(string(data), config.GetMarker())
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	fmt.Printf("ok: %s: region at %d..%d (%d bytes)\n", input, res.Start, res.End, len(res.Content))
	return nil
}

// destinationLabel names where the output went for the summary line
func destinationLabel() string {
	switch emitter.OutputMode(config.GetOutput()) {
	case emitter.OutputPrint:
		return "stdout"
	case emitter.OutputCopy:
		return "clipboard"
	default:
		return config.GetDest()
	}
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		report.Error(err)
		os.Exit(1)
	}
}
