package emitter

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gubarz/litex/internal/config"
)

// ============================================================================
// Output Template
// ============================================================================

const (
	prefix    = "const js = `"
	closer    = "`;\n"
	statement = "console.log(js);\n"
)

// Render wraps content in the fixed output template: a string declaration
// followed by a statement that prints it. The content is taken as-is; no
// re-escaping or validation is performed.
func Render(content string) string {
	return prefix + content + closer + statement
}

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using system commands
type systemClipboard struct{}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	cmd := c.findClipboardCommand()
	if cmd == nil {
		// No clipboard tool found, just print
		fmt.Print(text)
		return nil
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// findClipboardCommand returns the appropriate clipboard command for the system
func (c *systemClipboard) findClipboardCommand() *exec.Cmd {
	switch {
	case commandExists("wl-copy"):
		return exec.Command("wl-copy")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--input")
	case commandExists("pbcopy"):
		return exec.Command("pbcopy")
	default:
		return nil
	}
}

// commandExists checks if a command is available in PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ============================================================================
// Emitter
// ============================================================================

// Emitter delivers the rendered output to a file, stdout, or the clipboard
type Emitter struct {
	dest      string
	clipboard Clipboard
}

// New creates an emitter targeting the given destination file
func New(dest string) *Emitter {
	return &Emitter{
		dest:      dest,
		clipboard: &systemClipboard{},
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (e *Emitter) WithClipboard(c Clipboard) *Emitter {
	e.clipboard = c
	return e
}

// Dest returns the destination file path
func (e *Emitter) Dest() string {
	return e.dest
}

// ============================================================================
// Output Handling
// ============================================================================

// OutputMode represents how the rendered output should be delivered
type OutputMode string

const (
	OutputWrite OutputMode = "write"
	OutputPrint OutputMode = "print"
	OutputCopy  OutputMode = "copy"
)

// Emit renders content and delivers it based on the configured mode
func (e *Emitter) Emit(content string) error {
	mode := OutputMode(config.GetOutput())
	return e.EmitWithMode(content, mode)
}

// EmitWithMode renders content and delivers it with an explicit mode
func (e *Emitter) EmitWithMode(content string, mode OutputMode) error {
	text := Render(content)
	switch mode {
	case OutputPrint:
		fmt.Print(text)
		return nil
	case OutputCopy:
		return e.clipboard.Copy(text)
	default: // write
		return os.WriteFile(e.dest, []byte(text), 0644)
	}
}
