//go:build gocv

package device

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gocv.io/x/gocv"

	"github.com/bft-labs/devcap/internal/domain"
)

// Camera captures frames from a local video device through OpenCV.
type Camera struct {
	capture *gocv.VideoCapture
	img     gocv.Mat
	index   int
}

// NewCamera returns an unopened camera driver.
func NewCamera() Driver {
	return &Camera{}
}

func (c *Camera) Open(cfg domain.DeviceConfig) error {
	if cfg.SettingsPath != "" {
		if _, err := os.Stat(cfg.SettingsPath); err != nil {
			return &domain.OpenError{Reason: "settings path unreachable", Err: err}
		}
	}

	capture, err := gocv.VideoCaptureDevice(cfg.DeviceIndex)
	if err != nil {
		return &domain.OpenError{Reason: fmt.Sprintf("open video device %d", cfg.DeviceIndex), Err: err}
	}
	if !capture.IsOpened() {
		capture.Close()
		return &domain.OpenError{Reason: fmt.Sprintf("video device %d not available", cfg.DeviceIndex)}
	}

	w, h := cfg.Resolution.Size()
	capture.Set(gocv.VideoCaptureFrameWidth, float64(w))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(h))
	capture.Set(gocv.VideoCaptureFPS, float64(cfg.FrameRate))

	c.capture = capture
	c.img = gocv.NewMat()
	c.index = cfg.DeviceIndex
	return nil
}

func (c *Camera) Grab(domain.AcquirePolicy) (domain.Unit, error) {
	if ok := c.capture.Read(&c.img); !ok {
		return domain.Unit{}, domain.FatalError(fmt.Errorf("cannot read video device %d", c.index))
	}
	if c.img.Empty() {
		return domain.Unit{}, domain.TransientError(errors.New("empty frame"))
	}

	return domain.Unit{
		CapturedAt: time.Now(),
		Width:      c.img.Cols(),
		Height:     c.img.Rows(),
		Data:       c.img.ToBytes(),
		Meta:       map[string]string{"channels": strconv.Itoa(c.img.Channels())},
	}, nil
}

func (c *Camera) Release() error {
	c.img.Close()
	return c.capture.Close()
}

func (c *Camera) Info() domain.DeviceInfo {
	return domain.DeviceInfo{
		Model:    c.capture.CodecString(),
		Serial:   "video" + strconv.Itoa(c.index),
		Firmware: "opencv " + gocv.OpenCVVersion(),
	}
}
