// Package sink provides consumers for acquired units.
package sink

import (
	"sort"

	"github.com/bft-labs/devcap/internal/domain"
	"github.com/bft-labs/devcap/internal/ports"
)

// Status writes one status line per unit: capture time, sequence number
// and the unit's metadata.
type Status struct {
	logger ports.Logger
	msg    string
}

// NewStatus returns a sink that logs every unit with msg as the message.
func NewStatus(logger ports.Logger, msg string) *Status {
	if msg == "" {
		msg = "unit"
	}
	return &Status{logger: logger, msg: msg}
}

func (s *Status) Consume(u domain.Unit) error {
	fields := []ports.Field{
		ports.Uint64("seq", u.Seq),
		ports.Time("captured_at", u.CapturedAt),
	}
	if u.Width > 0 && u.Height > 0 {
		fields = append(fields, ports.Int("width", u.Width), ports.Int("height", u.Height))
	}
	keys := make([]string, 0, len(u.Meta))
	for k := range u.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, ports.String(k, u.Meta[k]))
	}
	s.logger.Info(s.msg, fields...)
	return nil
}
