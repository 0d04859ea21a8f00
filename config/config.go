package config

import (
	"runtime"
)

type (
	NET struct {
		// ReadBufferSize is the size of a single socket read. It also drives the end-of-request
		// heuristic: a read returning fewer bytes than this is considered the last one. Therefore,
		// requests with exactly the size of N buffers may stall until the client gives up.
		ReadBufferSize int
		// ResponseBufferPrealloc is the initial capacity of a buffer the response is serialized
		// into.
		ResponseBufferPrealloc int
	}

	Workers struct {
		// Count is the number of long-lived workers serving connections. It's fixed once
		// the server is started.
		Count int
	}

	Headers struct {
		// Default headers are included into every response implicitly, unless explicitly
		// overridden by a handler.
		Default map[string]string `test:"nullable"`
		// Prealloc is the initial capacity of request headers storage.
		Prealloc int
	}

	URI struct {
		// VarsPrealloc is the initial capacity of the storage for dynamic path segments.
		VarsPrealloc int
	}
)

// Config holds settings used across various parts of lattice.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because zero values here are rarely meaningful.
type Config struct {
	NET     NET
	Workers Workers
	Headers Headers
	URI     URI
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:         1024,
			ResponseBufferPrealloc: 1024,
		},
		Workers: Workers{
			// logical CPUs + 1
			Count: runtime.NumCPU() + 1,
		},
		Headers: Headers{
			Default:  make(map[string]string),
			Prealloc: 10,
		},
		URI: URI{
			VarsPrealloc: 4,
		},
	}
}
