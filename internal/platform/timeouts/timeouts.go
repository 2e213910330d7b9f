// Package timeouts holds the HTTP server durations shared by launchboard
// services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Render caps a single chart or report render triggered by a request.
const Render = 10 * time.Second

// LiveIdle closes live sessions that send no frames for this long.
const LiveIdle = 10 * time.Minute
