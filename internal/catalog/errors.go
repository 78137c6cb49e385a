package catalog

import "errors"

var (
	// ErrNoManifest indicates the catalogs.toml manifest does not exist.
	ErrNoManifest = errors.New("catalog manifest not found")
	// ErrEmptyRegistry indicates no usable catalogs could be registered.
	ErrEmptyRegistry = errors.New("no catalogs registered")
)
