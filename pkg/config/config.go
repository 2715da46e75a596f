package config

// Manifest configures how pack manifests are found
type Manifest struct {
	Names      []string `koanf:"names" yaml:"names" json:"names"`
	IgnoreFile string   `koanf:"ignore_file" yaml:"ignoreFile" json:"ignoreFile"`
}

// Packs configures pack discovery
type Packs struct {
	Ignore []string `koanf:"ignore" yaml:"ignore" json:"ignore"`
}

// Output configures how results are printed
type Output struct {
	Format string `koanf:"format" yaml:"format" json:"format"`
}

// Target configures where builds are materialized
type Target struct {
	Dir string `koanf:"dir" yaml:"dir" json:"dir"`
}

// Config is the main configuration structure
type Config struct {
	Manifest Manifest `koanf:"manifest"`
	Packs    Packs    `koanf:"packs"`
	Output   Output   `koanf:"output"`
	Target   Target   `koanf:"target"`
}

// Default returns the embedded defaults alone
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
	if err != nil {
		// The embedded defaults are part of the binary
		panic(err)
	}
	return cfg
}
