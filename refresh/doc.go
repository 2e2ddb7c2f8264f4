// Package refresh runs a background job that keeps a weather cache warm.
//
// A Refresher owns one worker goroutine. Each cycle it snapshots the cache's
// current key set and, for every city, fetches a fresh snapshot from its
// source and writes it back. A failure for one city never aborts the rest of
// the cycle or cancels future cycles: the cache simply keeps serving that
// city's last good value until it ages out.
//
// Start and Shutdown are idempotent. Shutdown cancels the worker and waits a
// bounded grace period for an in-flight cycle to finish; if the source is
// hung, Shutdown abandons the wait instead of blocking its caller.
package refresh
