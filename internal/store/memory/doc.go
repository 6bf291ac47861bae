// Package memory provides in-process implementations of the store
// interfaces. All data lives for the lifetime of the server process; no
// invariant spans a restart. The collections are guarded by RWMutexes
// because the HTTP server handles each request on its own goroutine.
package memory
