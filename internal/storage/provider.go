package storage

import "io"

// Provider defines the behavior for any dataset source backend.
// The three CSV exports are read exactly once, at startup.
type Provider interface {
	Open(name string) (io.ReadCloser, error)
}
