package render

import (
	"image/color"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-gif/model"
)

// LiveRenderer shows each generation in the terminal through tcell. Pressing q, Esc or
// Ctrl+C closes Done so the driver can stop between steps.
type LiveRenderer struct {
	screen tcell.Screen
	delay  time.Duration

	bg, fg, text tcell.Style

	done     chan struct{}
	quitOnce sync.Once
	finiOnce sync.Once
}

// NewLive initializes screen and starts listening for key presses.
// A zero or negative style.FPS draws frames without pausing.
func NewLive(screen tcell.Screen, style Style) (*LiveRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewLive] failed to initialize screen")
	}

	var delay time.Duration
	if style.FPS > 0 {
		delay = time.Second / time.Duration(style.FPS)
	}
	r := &LiveRenderer{
		screen: screen,
		delay:  delay,
		bg:     tcell.StyleDefault.Background(tcellColor(style.Background)),
		fg:     tcell.StyleDefault.Background(tcellColor(style.Foreground)),
		text:   tcell.StyleDefault.Foreground(tcellColor(style.Text)).Background(tcellColor(style.Background)),
		done:   make(chan struct{}),
	}
	screen.SetStyle(r.bg)
	screen.Clear()

	go r.pollEvents()
	return r, nil
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (r *LiveRenderer) pollEvents() {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				r.quit()
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

func (r *LiveRenderer) quit() {
	r.quitOnce.Do(func() { close(r.done) })
}

// Done is closed once the user asks to stop or the renderer is closed
func (r *LiveRenderer) Done() <-chan struct{} {
	return r.done
}

// Render draws the title on the first line and two terminal columns per cell below it,
// then waits one frame interval unless the user quits first
func (r *LiveRenderer) Render(g *model.Grid, step int) error {
	r.screen.Clear()
	for x, ch := range Title(step) {
		r.screen.SetContent(x, 0, ch, nil, r.text)
	}
	for i := range g.Rows() {
		for j := range g.Columns() {
			st := r.bg
			if g.Get(i, j) {
				st = r.fg
			}
			r.screen.SetContent(2*j, i+1, ' ', nil, st)
			r.screen.SetContent(2*j+1, i+1, ' ', nil, st)
		}
	}
	r.screen.Show()

	if r.delay > 0 {
		select {
		case <-r.done:
		case <-time.After(r.delay):
		}
	}
	return nil
}

// Close restores the terminal
func (r *LiveRenderer) Close() error {
	r.finiOnce.Do(r.screen.Fini)
	r.quit()
	return nil
}
