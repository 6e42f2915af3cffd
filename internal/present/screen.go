package present

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"sdfterm/internal/raster"
)

// Screen draws frames on a full-screen tcell display.
// Esc, Ctrl-C and q close the Quit channel.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style

	quit     chan struct{}
	quitOnce sync.Once
	doneCh   chan struct{}
}

// NewScreen initialises the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("present: open screen: %w", err)
	}
	return newScreen(s)
}

func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("present: init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()

	sc := &Screen{
		screen: s,
		style:  tcell.StyleDefault,
		quit:   make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	go sc.pollLoop()
	return sc, nil
}

// pollLoop reads input until the screen is finalised.
func (s *Screen) pollLoop() {
	defer close(s.doneCh)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				s.quitOnce.Do(func() { close(s.quit) })
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return r == 'c' || r == 'C'
		}
		return r == 'q'
	}
	return false
}

func (s *Screen) Quit() <-chan struct{} {
	return s.quit
}

func (s *Screen) Present(fb *raster.FrameBuffer) error {
	s.screen.Clear()
	for y := 0; y < fb.Height; y++ {
		for x, c := range fb.Row(y) {
			s.screen.SetContent(x, y, rune(c), nil, s.style)
		}
	}
	s.screen.Show()
	return nil
}

// Close restores the terminal and waits for the input loop to exit.
func (s *Screen) Close() error {
	s.screen.Fini()
	<-s.doneCh
	return nil
}
