package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads a spec file from the given path and translates it into the
	// format-agnostic document model. All parse errors are fatal for the
	// whole document; there is no partial result.
	Load(ctx context.Context, path string) (*Document, error)
}
