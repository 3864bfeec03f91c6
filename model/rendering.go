package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/logrusorgru/aurora"
)

const macosClearCmd = "clear"

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out   io.Writer
	Color aurora.Aurora
}

// NewTerminalRenderer writes to stdout, colored unless color is false
func NewTerminalRenderer(color bool) *TerminalRenderer {
	return &TerminalRenderer{
		Out:   os.Stdout,
		Color: aurora.NewAurora(color),
	}
}

// Display renders a universe snapshot
func (r *TerminalRenderer) Display(u fmt.Stringer) {
	fmt.Fprintln(r.Out, r.Color.Green(u.String()))
}

// Status renders a labelled value under the field
func (r *TerminalRenderer) Status(name, format string, values ...interface{}) {
	fmt.Fprintf(r.Out, "%s: "+format+"\n", append([]interface{}{r.Color.Cyan(name)}, values...)...)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
