package video

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/wcaarls/puc16/vm"
)

// Window is a live fyne display of a machine's video RAM, grounded on the
// teacher's fyne wiring in debugger/gui.go (fyne.io/fyne/v2/app.New +
// a single canvas object refreshed on a timer) but scoped to PUC16's one
// job: redraw the tile framebuffer at a fixed throttle.
type Window struct {
	app    fyne.App
	window fyne.Window
	image  *canvas.Image
	state  *vm.State
	stop   chan struct{}
}

// NewWindow creates (but does not yet show) a video window over state.
// Apart from the initial frame rendered here, reads of state.Mem happen
// only from the refresh goroutine started by Run, each producing one
// immutable frame via Render — the window never mutates machine state.
func NewWindow(state *vm.State) *Window {
	a := app.New()
	w := a.NewWindow("PUC16 Video")

	img := canvas.NewImageFromImage(Render(state.Mem))
	img.FillMode = canvas.ImageFillOriginal
	w.SetContent(img)
	w.Resize(fyne.NewSize(float32(FrameWidth), float32(FrameHeight)))

	return &Window{app: a, window: w, image: img, state: state, stop: make(chan struct{})}
}

// Run shows the window and redraws it at throttleHz until the window is
// closed or Close is called. It blocks until the window closes, matching
// the teacher's ShowAndRun pattern.
func (win *Window) Run(throttleHz int) {
	if throttleHz <= 0 {
		throttleHz = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(throttleHz))
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-win.stop:
				return
			case <-ticker.C:
				win.image.Image = Render(win.state.Mem)
				canvas.Refresh(win.image)
			}
		}
	}()

	win.window.ShowAndRun()
}

// Close stops the refresh loop and closes the window.
func (win *Window) Close() {
	close(win.stop)
	win.window.Close()
}

// Image returns the frame currently displayed, for inspection in tests.
func (win *Window) Image() image.Image {
	return win.image.Image
}
