package device

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bft-labs/devcap/internal/domain"
)

var (
	errFrameDropped = errors.New("frame dropped")
	errDisconnected = errors.New("device disconnected")
)

// SyntheticOptions scripts the failure behaviour of a synthetic device.
type SyntheticOptions struct {
	// DropEvery makes every Nth grab fail transiently. Zero disables drops.
	DropEvery int

	// FailAfter makes every grab after the Nth fail fatally. Zero never fails.
	FailAfter int

	// Sleep paces frames at the configured frame rate. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Synthetic is a driver producing a moving gray gradient at the configured
// resolution and frame rate. It checks the settings path the same way a
// vendor SDK would, so an unreachable path fails at open.
type Synthetic struct {
	opts   SyntheticOptions
	cfg    domain.DeviceConfig
	buf    []byte
	width  int
	height int
	period time.Duration
	grabs  int
	last   time.Time
}

// NewSynthetic returns an unopened synthetic driver.
func NewSynthetic(opts SyntheticOptions) *Synthetic {
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	return &Synthetic{opts: opts}
}

func (s *Synthetic) Open(cfg domain.DeviceConfig) error {
	if cfg.SettingsPath != "" {
		fi, err := os.Stat(cfg.SettingsPath)
		if err != nil {
			return &domain.OpenError{Reason: "settings path unreachable", Err: err}
		}
		if !fi.IsDir() {
			return &domain.OpenError{Reason: fmt.Sprintf("settings path %s is not a directory", cfg.SettingsPath)}
		}
	}

	s.cfg = cfg
	s.width, s.height = cfg.Resolution.Size()
	s.buf = make([]byte, s.width*s.height)
	s.period = time.Second / time.Duration(cfg.FrameRate)
	return nil
}

func (s *Synthetic) Grab(policy domain.AcquirePolicy) (domain.Unit, error) {
	if !s.last.IsZero() {
		wait := s.period - time.Since(s.last)
		if policy.Timeout > 0 && wait > policy.Timeout {
			s.opts.Sleep(policy.Timeout)
			return domain.Unit{}, domain.TransientError(fmt.Errorf("no frame within %v", policy.Timeout))
		}
		if wait > 0 {
			s.opts.Sleep(wait)
		}
	}
	s.last = time.Now()
	s.grabs++

	if s.opts.FailAfter > 0 && s.grabs > s.opts.FailAfter {
		return domain.Unit{}, domain.FatalError(errDisconnected)
	}
	if s.opts.DropEvery > 0 && s.grabs%s.opts.DropEvery == 0 {
		return domain.Unit{}, domain.TransientError(errFrameDropped)
	}

	shift := byte(s.grabs)
	for y := 0; y < s.height; y++ {
		row := s.buf[y*s.width : (y+1)*s.width]
		for x := range row {
			row[x] = byte(x+y) + shift
		}
	}

	return domain.Unit{
		CapturedAt: s.last,
		Width:      s.width,
		Height:     s.height,
		Data:       s.buf,
		Meta: map[string]string{
			"resolution": string(s.cfg.Resolution),
			"depth_mode": string(s.cfg.DepthMode),
			"frame":      strconv.Itoa(s.grabs),
		},
	}, nil
}

func (s *Synthetic) Release() error {
	s.buf = nil
	return nil
}

// Info reports a fixed identity for the synthetic source.
func (s *Synthetic) Info() domain.DeviceInfo {
	return domain.DeviceInfo{Model: "Synthetic", Serial: "SYN-" + string(s.cfg.Resolution), Firmware: "0"}
}
