package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Input      string `mapstructure:"input"`
	Dest       string `mapstructure:"dest"`
	Marker     string `mapstructure:"marker"`
	Output     string `mapstructure:"output"`
	Quiet      bool   `mapstructure:"quiet"`
	ColorPath  string `mapstructure:"color_path"`
	ColorCount string `mapstructure:"color_count"`
	ColorErr   string `mapstructure:"color_err"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("input", "src/index.ts")
	viper.SetDefault("dest", "temp_eval.js")
	viper.SetDefault("marker", "const js = `")
	viper.SetDefault("output", "write")
	viper.SetDefault("quiet", false)
	viper.SetDefault("color_path", "36")  // Cyan
	viper.SetDefault("color_count", "32") // Green
	viper.SetDefault("color_err", "31")   // Red

	viper.SetConfigName("litex")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "litex"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("LITEX")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetInput returns the input file path with tilde expansion
func GetInput() string {
	return expandTilde(viper.GetString("input"))
}

// GetDest returns the destination file path with tilde expansion
func GetDest() string {
	return expandTilde(viper.GetString("dest"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetMarker returns the marker substring that opens the region
func GetMarker() string {
	return viper.GetString("marker")
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetQuiet returns whether the summary line is suppressed
func GetQuiet() bool {
	return viper.GetBool("quiet")
}

// GetColorPath returns ANSI color code for file paths
func GetColorPath() string {
	return viper.GetString("color_path")
}

// GetColorCount returns ANSI color code for the byte count
func GetColorCount() string {
	return viper.GetString("color_count")
}

// GetColorErr returns ANSI color code for error lines
func GetColorErr() string {
	return viper.GetString("color_err")
}

// SetInput sets the input path at runtime
func SetInput(path string) {
	viper.Set("input", path)
	C.Input = path
}

// SetDest sets the destination path at runtime
func SetDest(path string) {
	viper.Set("dest", path)
	C.Dest = path
}

// SetMarker sets the marker substring at runtime
func SetMarker(marker string) {
	viper.Set("marker", marker)
	C.Marker = marker
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetQuiet sets summary suppression at runtime
func SetQuiet(quiet bool) {
	viper.Set("quiet", quiet)
	C.Quiet = quiet
}
