package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	XConn *xgb.Conn
	XRoot xproto.Window

	xScreen *xproto.ScreenInfo
)

func InitX11() error {
	var err error
	XConn, err = xgb.NewConn()
	if err != nil {
		return err
	}

	setup := xproto.Setup(XConn)
	xScreen = setup.DefaultScreen(XConn)
	XRoot = xScreen.Root
	return nil
}

func CloseX11() {
	if XConn != nil {
		XConn.Close()
		XConn = nil
		xScreen = nil
	}
}

// ScreenSize returns the default X11 screen size in pixels.
func ScreenSize() (int, int, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, err
		}
	}
	return int(xScreen.WidthInPixels), int(xScreen.HeightInPixels), nil
}

// GetGlobalMousePosition reads the pointer position on the root window, which
// stays valid while the pointer is outside our window.
func GetGlobalMousePosition() (int, int, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, err
		}
	}

	reply, err := xproto.QueryPointer(XConn, XRoot).Reply()
	if err != nil {
		return 0, 0, err
	}

	return int(reply.RootX), int(reply.RootY), nil
}

// DefaultWindowSize picks a window size that fits the screen: a fraction of
// the X11 screen when available, the fallback otherwise.
func DefaultWindowSize(fallbackW, fallbackH int, fraction float64) (int, int) {
	w, h, err := ScreenSize()
	if err != nil || w <= 0 || h <= 0 {
		Debug("X11 screen size unavailable (%v), using %dx%d", err, fallbackW, fallbackH)
		return fallbackW, fallbackH
	}
	return FitWindow(w, h, fallbackW, fallbackH, fraction)
}

// FitWindow scales a screen size by fraction, never exceeding the screen and
// never going below a quarter of the fallback.
func FitWindow(screenW, screenH, fallbackW, fallbackH int, fraction float64) (int, int) {
	if fraction <= 0 || fraction > 1 {
		fraction = 1
	}
	w := int(float64(screenW) * fraction)
	h := int(float64(screenH) * fraction)
	if w < fallbackW/4 || h < fallbackH/4 {
		return fallbackW, fallbackH
	}
	return w, h
}
