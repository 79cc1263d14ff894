// Package engine binds a trained model into a ready-to-run word boundary
// engine for one script, and caches one such engine per script as a
// process-wide singleton.
//
// An Engine is immutable after construction, so concurrent calls to
// BreakWord on the same Engine, or on distinct Engines, are safe without
// any locking; only first-use construction of the singleton needs to be
// synchronized, which Cache does with sync.Once.
package engine
