package cache

import "time"

// Keyer builds cache keys.
type Keyer interface {
	// DimensionsKey returns the key for the decoded size of the image at path.
	DimensionsKey(path string, opts DimensionsKeyOpts) string
}

// DimensionsKeyOpts identify one version of a file.
type DimensionsKeyOpts struct {
	Size    int64
	ModTime time.Time
}

// DefaultKeyer produces "dims:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DimensionsKey hashes the path together with size and modification time.
func (DefaultKeyer) DimensionsKey(path string, opts DimensionsKeyOpts) string {
	return hashKey("dims", path, opts.Size, opts.ModTime.UnixNano())
}
