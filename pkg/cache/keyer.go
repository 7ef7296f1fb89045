package cache

// OptionsKeyOpts holds every input besides the config that shapes an option
// tree.
type OptionsKeyOpts struct {
	ChartType string `json:"chart_type"`
	Theme     string `json:"theme"`
	Dark      bool   `json:"dark"`
}

// ArtifactKeyOpts holds every input that shapes a rendered artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Pretty bool   `json:"pretty,omitempty"`

	// ConfigHash and ChartType are set for formats drawn from the config
	// rather than the option tree.
	ConfigHash string `json:"config_hash,omitempty"`
	ChartType  string `json:"chart_type,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// OptionsKey keys the option tree of a config, identified by its hash.
	OptionsKey(configHash string, opts OptionsKeyOpts) string

	// ArtifactKey keys a rendered artifact of an option tree.
	ArtifactKey(optionsHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// OptionsKey implements [Keyer].
func (DefaultKeyer) OptionsKey(configHash string, opts OptionsKeyOpts) string {
	return hashKey("options", configHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(optionsHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", optionsHash, opts)
}
