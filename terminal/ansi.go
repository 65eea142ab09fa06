package terminal

import (
	"bufio"
	"io"

	"github.com/lixenwraith/ascii-portrait/render"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during export)
var (
	csiRIS  = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0 = []byte("\x1b[0m")

	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")

	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
	csiFocusOff       = []byte("\x1b[?1004l")

	// Color prefixes
	sgrFg256 = []byte(";38;5;")
	sgrBg256 = []byte(";48;5;")
	sgrFgRGB = []byte(";38;2;")
	sgrBgRGB = []byte(";48;2;")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

func writeColor(w *bufio.Writer, prefix256, prefixRGB []byte, c render.RGB, mode ColorMode) {
	if mode == ColorMode256 {
		w.Write(prefix256)
		writeInt(w, int(RGBTo256(c)))
		return
	}
	w.Write(prefixRGB)
	writeInt(w, int(c.R))
	w.WriteByte(';')
	writeInt(w, int(c.G))
	w.WriteByte(';')
	writeInt(w, int(c.B))
}

// WriteANSI renders the buffer as colored text, one line per row
// SGR is emitted only when colors change within a row; each row ends with a reset
func WriteANSI(out io.Writer, buf *render.CellBuffer, mode ColorMode) error {
	w := bufio.NewWriter(out)
	cols := buf.Cols()
	cells := buf.Cells()

	for y := 0; y < buf.Rows(); y++ {
		var lastFg, lastBg render.RGB
		lastValid := false

		for x := 0; x < cols; x++ {
			cell := cells[y*cols+x]

			if !lastValid || cell.Fg != lastFg || cell.Bg != lastBg {
				w.WriteString("\x1b[0")
				writeColor(w, sgrFg256, sgrFgRGB, cell.Fg, mode)
				writeColor(w, sgrBg256, sgrBgRGB, cell.Bg, mode)
				w.WriteByte('m')
				lastFg, lastBg, lastValid = cell.Fg, cell.Bg, true
			}

			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			w.WriteRune(r)
		}
		w.Write(csiSGR0)
		w.WriteByte('\n')
	}
	return w.Flush()
}

// EmergencyReset writes the sequences that undo screen, mouse and focus modes
// Used from panic recovery when tcell may not have finalized
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)
	w.Write(csiFocusOff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if s, ok := w.(interface{ Sync() error }); ok {
		s.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
