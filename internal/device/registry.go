package device

import (
	"fmt"
	"sort"
)

// Driver kinds accepted by New.
const (
	KindSynthetic = "synthetic"
	KindHeartbeat = "heartbeat"
	KindCamera    = "camera"
)

var constructors = map[string]func() Driver{
	KindSynthetic: func() Driver { return NewSynthetic(SyntheticOptions{}) },
	KindHeartbeat: func() Driver { return NewHeartbeat() },
	KindCamera:    func() Driver { return NewCamera() },
}

// Kinds returns the registered driver kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(constructors))
	for k := range constructors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// New builds an unopened handle for the named driver kind.
func New(kind string) (*Handle, error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("unknown driver %q (want one of %v)", kind, Kinds())
	}
	return NewHandle(ctor()), nil
}
