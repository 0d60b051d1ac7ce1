package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	Secure    bool   `yaml:"secure"`
	Bucket    string `yaml:"bucket"`

	// PublicBaseURL is the externally resolvable root for stored objects
	// (a CDN origin, typically). Empty means URLs are derived from the
	// endpoint and bucket directly.
	PublicBaseURL string `yaml:"public_base_url"`
}

type UploaderConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

type ListerConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
