package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the settings file at path and overlays it on Defaults().
	Load(ctx context.Context, path string) (*Settings, error)
}
