// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// # Port Interfaces
//
//   - [Device]: Opens, acquires from, and closes one external device
//   - [Sink]: Consumes each acquired unit
//   - [ShutdownObserver]: Reports whether the process has been asked to stop
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Drivers (internal/device), sinks (internal/sink), the signal coordinator
// (internal/shutdown) and the zerolog adapter (internal/adapters/log)
// implement them. Tests drive the application layer with scripted fakes.
package ports
