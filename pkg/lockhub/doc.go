// Package lockhub provides a process-wide synchronous fan-out registry.
//
// It exists so one state-machine stack can ask every other live stack to
// lock a set of machines for the remainder of their current tick pass.
// Unlike a channel-based broadcaster, dispatch happens inline in the
// caller's goroutine: the runtime it serves is single-threaded and
// cooperative, and lock visibility must be immediate within the pass that
// requested it.
//
// # Usage
//
//	hub := lockhub.New[uint64]()
//	reg := hub.Register(func(mask uint64) { /* apply lock */ })
//	defer reg.Deregister()
//
//	hub.Broadcast(0b0010, reg) // reaches every handler but reg's own
//
// Registration and deregistration are guarded by a mutex so independent
// hosts may share one hub, but handlers themselves are expected to run on a
// single logical thread of control.
package lockhub
