package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"

	"github.com/lixenwraith/ascii-portrait/render"
	"github.com/lixenwraith/ascii-portrait/terminal"
)

// Stdout as a path writes to standard output instead of a file
const Stdout = "-"

// SavePNG encodes the canvas and replaces path atomically
func SavePNG(path string, c *Canvas) error {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return writeTo(path, &buf)
}

// SaveANSI writes the cell buffer as ANSI colored text to path, or stdout for "-"
func SaveANSI(path string, cells *render.CellBuffer, mode terminal.ColorMode) error {
	var buf bytes.Buffer
	if err := terminal.WriteANSI(&buf, cells, mode); err != nil {
		return fmt.Errorf("encode ansi: %w", err)
	}
	return writeTo(path, &buf)
}

func writeTo(path string, r io.Reader) error {
	if path == Stdout {
		_, err := io.Copy(os.Stdout, r)
		return err
	}
	if err := atomic.WriteFile(path, r); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
