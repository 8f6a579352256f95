package render

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sheikhrachel/go-gol-gif/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out         io.Writer
	ClearScreen bool
}

// NewTerminal returns a renderer printing to stdout and clearing the screen between frames
func NewTerminal() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, ClearScreen: true}
}

// Render prints the step title and the grid
func (r *TerminalRenderer) Render(g *model.Grid, step int) error {
	if r.ClearScreen {
		r.Clear()
	}
	if _, err := fmt.Fprintln(r.Out, Title(step)); err != nil {
		return err
	}
	return r.Display(g)
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *model.Grid) error {
	for i := range g.Rows() {
		for j := range g.Columns() {
			cell := gridPosEmpty
			if g.Get(i, j) {
				cell = gridPosBlock
			}
			if _, err := io.WriteString(r.Out, cell); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.Out); err != nil {
			return err
		}
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}

// Close implements Renderer
func (r *TerminalRenderer) Close() error { return nil }
