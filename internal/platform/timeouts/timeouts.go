// Package timeouts defines shared timeout constants used across the
// gateway. Centralizing these values prevents drift between the HTTP
// surface and the Riva transport and makes the durations discoverable.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the Riva endpoint.
const GRPCDial = 5 * time.Second

// Recognize caps a single offline recognition round trip.
const Recognize = 60 * time.Second

// Synthesize caps a single unary synthesis round trip.
const Synthesize = 60 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionIdle evicts streaming sessions that stop sending audio.
const SessionIdle = 2 * time.Minute

// SessionLinger keeps a stopped session readable before eviction so late
// polls can still fetch the final transcript.
const SessionLinger = time.Minute
