package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ascii-portrait/render"
)

// Screen owns the tcell screen: flushes cell buffers and polls input
type Screen struct {
	screen tcell.Screen
	mode   ColorMode
}

// NewScreen initializes the terminal with mouse motion and focus reporting
func NewScreen(mode ColorMode) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return Attach(s, mode)
}

// Attach initializes an existing tcell screen, e.g. a simulation screen in tests
func Attach(s tcell.Screen, mode ColorMode) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.EnableMouse(tcell.MouseMotionEvents)
	s.EnableFocus()
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s, mode: mode}, nil
}

// Size returns the terminal size in cells
func (s *Screen) Size() (cols, rows int) {
	return s.screen.Size()
}

func (s *Screen) Mode() ColorMode {
	return s.mode
}

// Flush writes every buffer cell and shows the result
// Cells outside the current terminal size are dropped
func (s *Screen) Flush(buf *render.CellBuffer) {
	w, h := s.screen.Size()
	cols, rows := min(w, buf.Cols()), min(h, buf.Rows())
	cells := buf.Cells()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := cells[y*buf.Cols()+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(TcellColor(c.Fg, s.mode)).
				Background(TcellColor(c.Bg, s.mode))
			s.screen.SetContent(x, y, r, nil, style)
		}
	}
	s.screen.Show()
}

// PollEvent blocks for the next input event
func (s *Screen) PollEvent() Event {
	return Translate(s.screen.PollEvent())
}

// Sync redraws everything, used after resize
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Fini restores the terminal, PollEvent returns EventClosed afterwards
func (s *Screen) Fini() {
	s.screen.Fini()
}
