// Package events provides in-process fan-out of events to a dynamic set of
// subscribers.
//
// Producers publish through the EventEmitter interface without knowing who
// is listening. Hub is the only implementation: every subscriber owns a
// buffered channel, and publishing never blocks on a slow subscriber. When a
// subscriber's buffer is full the oldest queued event is discarded so the
// newest one always fits.
//
// The primary components are:
// - Event: a typed, pre-serialized message
// - EventEmitter: interface for components that publish events
// - Hub: the subscriber registry and fan-out
package events
