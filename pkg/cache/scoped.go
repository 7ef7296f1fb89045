package cache

// ScopedKeyer prefixes every key from an inner [Keyer]. The CLI and the
// server scope keys by release version:
//
//	keyer := NewScopedKeyer(nil, buildinfo.Version+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the [DefaultKeyer] when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return ScopedKeyer{inner: inner, prefix: prefix}
}

func (k ScopedKeyer) OptionsKey(configHash string, opts OptionsKeyOpts) string {
	return k.prefix + k.inner.OptionsKey(configHash, opts)
}

func (k ScopedKeyer) ArtifactKey(optionsHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(optionsHash, opts)
}
