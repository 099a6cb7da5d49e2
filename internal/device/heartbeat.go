package device

import (
	"time"

	"github.com/bft-labs/devcap/internal/domain"
)

// Heartbeat is a driver that produces one unit per grab carrying the
// configured message. The acquisition loop's interval paces it.
type Heartbeat struct {
	msg []byte
}

// NewHeartbeat returns an unopened heartbeat driver.
func NewHeartbeat() *Heartbeat {
	return &Heartbeat{}
}

func (h *Heartbeat) Open(cfg domain.DeviceConfig) error {
	if cfg.Message == "" {
		return &domain.OpenError{Reason: "heartbeat message is empty"}
	}
	h.msg = []byte(cfg.Message)
	return nil
}

func (h *Heartbeat) Grab(domain.AcquirePolicy) (domain.Unit, error) {
	return domain.Unit{
		CapturedAt: time.Now(),
		Data:       h.msg,
		Meta:       map[string]string{"text": string(h.msg)},
	}, nil
}

func (h *Heartbeat) Release() error {
	h.msg = nil
	return nil
}

func (h *Heartbeat) Info() domain.DeviceInfo {
	return domain.DeviceInfo{Model: "Heartbeat"}
}
