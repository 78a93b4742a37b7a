package cache

// ScopedKeyer wraps a Keyer with a prefix so that entries written by
// different builds never mix.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DimensionsKey generates a prefixed dimensions key.
func (k *ScopedKeyer) DimensionsKey(path string, opts DimensionsKeyOpts) string {
	return k.prefix + k.inner.DimensionsKey(path, opts)
}
