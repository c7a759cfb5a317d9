// Package apperr holds errors shared across layers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
)

// DiscoveryError reports that content documents could not be enumerated or
// read. It fails a build; the indexer itself never produces one.
type DiscoveryError struct {
	Op   string // "list" or "read"
	Path string
	Err  error
}

func (e *DiscoveryError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("discovery: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("discovery: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// IsDiscovery reports whether err carries a DiscoveryError.
func IsDiscovery(err error) bool {
	var de *DiscoveryError
	return errors.As(err, &de)
}
