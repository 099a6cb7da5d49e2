// Package app contains the application layer: the lifecycle manager that
// owns a device for one session, the acquisition loop it runs, and the
// supervisor that reopens the device when configuration is reloaded.
//
// The loop polls a ports.ShutdownObserver between steps and sleeps in
// bounded increments, so a stop request is honored within one step
// regardless of the configured interval.
package app
