// Package shutdown turns asynchronous termination signals into a
// cooperative, process-wide stop flag.
//
// The flag starts false and is set at most once; it is never reset. The
// signal goroutine only stores the flag. Closing the device and reporting
// the shutdown happen in the acquisition loop when it next observes it.
package shutdown

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/bft-labs/devcap/internal/ports"
)

// Coordinator owns the process-wide shutdown flag.
type Coordinator struct {
	requested atomic.Bool
	signal    atomic.Value // os.Signal

	ch   chan os.Signal
	done chan struct{}
}

// New returns a coordinator that has not registered any signals. It is
// useful on its own in tests and for programmatic stops.
func New() *Coordinator {
	return &Coordinator{}
}

// Listen registers SIGINT and SIGTERM (or the given signals) and returns
// a coordinator whose flag is set when any of them arrives.
func Listen(sigs ...os.Signal) *Coordinator {
	if len(sigs) == 0 {
		sigs = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}
	c := New()
	c.ch = make(chan os.Signal, 1)
	c.done = make(chan struct{})
	signal.Notify(c.ch, sigs...)

	go func() {
		select {
		case sig := <-c.ch:
			c.signal.Store(sig)
			c.requested.Store(true)
		case <-c.done:
		}
	}()
	return c
}

// Requested reports whether shutdown has been requested.
func (c *Coordinator) Requested() bool {
	return c.requested.Load()
}

// Request sets the flag without a signal.
func (c *Coordinator) Request() {
	c.requested.Store(true)
}

// Signal returns the signal that set the flag, or nil if none did.
func (c *Coordinator) Signal() os.Signal {
	sig, _ := c.signal.Load().(os.Signal)
	return sig
}

// Stop unregisters the signal handler. The flag keeps its value. Stop
// must be called at most once.
func (c *Coordinator) Stop() {
	if c.ch == nil {
		return
	}
	signal.Stop(c.ch)
	close(c.done)
}

// Any returns an observer that reports true once any of obs does.
func Any(obs ...ports.ShutdownObserver) ports.ShutdownObserver {
	return anyObserver(obs)
}

type anyObserver []ports.ShutdownObserver

func (a anyObserver) Requested() bool {
	for _, o := range a {
		if o.Requested() {
			return true
		}
	}
	return false
}
