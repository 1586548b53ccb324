package domain

// PlatformProperty is a named execution-environment property that
// participates in cache key derivation.
type PlatformProperty struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Metadata is static execution metadata mixed into every cache key.
// Changing any field invalidates all previously derived keys.
type Metadata struct {
	InstanceName       string             `yaml:"instance_name"`
	CacheKeyGenVersion string             `yaml:"cache_key_gen_version"`
	PlatformProperties []PlatformProperty `yaml:"platform_properties"`
}
