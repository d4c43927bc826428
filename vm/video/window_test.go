package video_test

import (
	"testing"

	_ "fyne.io/fyne/v2/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcaarls/puc16/vm"
	"github.com/wcaarls/puc16/vm/video"
)

// Importing fyne.io/fyne/v2/test registers its headless software driver as
// the default for the test binary, letting app.New() run without a real
// display — the same trick the teacher's debugger/gui_test.go relies on.

func TestNewWindowRendersInitialFrame(t *testing.T) {
	s := vm.NewState(vm.NewBufferIO(""))
	video.Preload(s.Mem)

	win := video.NewWindow(s)
	require.NotNil(t, win)
	assert.Equal(t, video.FrameWidth, win.Image().Bounds().Dx())
	assert.Equal(t, video.FrameHeight, win.Image().Bounds().Dy())
}
