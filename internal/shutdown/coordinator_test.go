package shutdown

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func TestCoordinator_InitiallyFalse(t *testing.T) {
	c := New()
	if c.Requested() {
		t.Error("Requested() = true before any request")
	}
	if c.Signal() != nil {
		t.Errorf("Signal() = %v, want nil", c.Signal())
	}
}

func TestCoordinator_RequestIsSticky(t *testing.T) {
	c := New()
	c.Request()
	c.Request()
	if !c.Requested() {
		t.Error("Requested() = false after Request")
	}
}

func TestCoordinator_Signal(t *testing.T) {
	c := Listen(syscall.SIGUSR1)
	defer c.Stop()

	if err := syscall.Kill(os.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("kill: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !c.Requested() {
		if time.Now().After(deadline) {
			t.Fatal("signal not observed within 2s")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if c.Signal() != syscall.SIGUSR1 {
		t.Errorf("Signal() = %v, want SIGUSR1", c.Signal())
	}
}

func TestCoordinator_StopWithoutSignal(t *testing.T) {
	c := Listen(syscall.SIGUSR2)
	c.Stop()
	if c.Requested() {
		t.Error("Requested() = true after Stop without signal")
	}
	New().Stop()
}

func TestAny(t *testing.T) {
	a, b := New(), New()
	obs := Any(a, b)
	if obs.Requested() {
		t.Fatal("Any() requested before either flag")
	}
	b.Request()
	if !obs.Requested() {
		t.Error("Any() not requested after one flag set")
	}
}
