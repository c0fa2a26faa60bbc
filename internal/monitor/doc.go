// Package monitor samples host utilization and broadcasts it to subscribers.
//
// A Broadcaster owns a single background loop. The loop is started lazily by
// the first call to EnsureRunning and, once started, runs until the process
// exits: prime the CPU counter, then sample, publish a system_update event and
// sleep, forever. A StartGuard makes the start transition happen exactly once
// no matter how many clients connect concurrently.
//
// A failed sample is logged and skipped; the loop keeps its cadence.
package monitor
