//go:build gocv

package sink

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"github.com/bft-labs/devcap/internal/domain"
)

// Window renders each unit in an OpenCV window. Pressing q or Esc calls
// onQuit, which should request a cooperative shutdown.
type Window struct {
	window *gocv.Window
	onQuit func()
}

// NewWindow opens a display window titled title.
func NewWindow(title string, onQuit func()) (*Window, error) {
	return &Window{window: gocv.NewWindow(title), onQuit: onQuit}, nil
}

func (w *Window) Consume(u domain.Unit) error {
	if u.Width == 0 || u.Height == 0 || len(u.Data) == 0 {
		return errors.New("unit has no image data")
	}

	typ := gocv.MatTypeCV8UC1
	switch len(u.Data) / (u.Width * u.Height) {
	case 1:
	case 3:
		typ = gocv.MatTypeCV8UC3
	case 4:
		typ = gocv.MatTypeCV8UC4
	default:
		return fmt.Errorf("unsupported pixel layout: %d bytes for %dx%d", len(u.Data), u.Width, u.Height)
	}

	img, err := gocv.NewMatFromBytes(u.Height, u.Width, typ, u.Data)
	if err != nil {
		return fmt.Errorf("wrap frame: %w", err)
	}
	defer img.Close()

	w.window.IMShow(img)
	if key := w.window.WaitKey(1); key == 'q' || key == 27 {
		if w.onQuit != nil {
			w.onQuit()
		}
	}
	return nil
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.window.Close()
}
