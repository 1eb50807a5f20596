// Package observability provides a hook for observing capture operations
// performed by the tracebridge packages.
//
// # Overview
//
// The package defines a single Observer interface that the bridge calls once
// per capture attempt, passing a CaptureContext that summarizes what
// happened: which action was captured, how long it took, how many attributes
// were set, how many were rejected, and whether the capture failed.
// Applications implement Observer to feed metrics, audit logs, or alerting
// without coupling the bridge to any particular backend.
//
// # Design
//
//  1. Optional: the bridge works without an observer; nil checks happen at
//     the call site.
//  2. One call per capture: the observer sees every outcome, including
//     validation failures where no span was opened.
//  3. Synchronous: the observer runs on the capturing goroutine, so
//     implementations must be fast and must not block.
//
// # Usage
//
// Pass an implementation when constructing the bridge:
//
//	b := bridge.NewBridge(tracerClient,
//	    bridge.WithObserver(myObserver),
//	)
//
// The metrics package ships a ready-made implementation (CaptureObserver)
// that records capture totals and latency as Prometheus metrics.
package observability
