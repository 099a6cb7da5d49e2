//go:build !gocv

package device

import (
	"errors"

	"github.com/bft-labs/devcap/internal/domain"
)

var errNoCamera = errors.New("camera support not compiled in (rebuild with -tags gocv)")

type cameraStub struct{}

// NewCamera returns a driver whose Open always fails; the OpenCV-backed
// implementation needs the gocv build tag.
func NewCamera() Driver {
	return cameraStub{}
}

func (cameraStub) Open(domain.DeviceConfig) error {
	return &domain.OpenError{Reason: "camera unavailable", Err: errNoCamera}
}

func (cameraStub) Grab(domain.AcquirePolicy) (domain.Unit, error) {
	return domain.Unit{}, domain.FatalError(errNoCamera)
}

func (cameraStub) Release() error { return nil }
