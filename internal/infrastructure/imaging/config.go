package imaging

// Config fixes the target dimensions and quality per variant. These are
// service-level constants, not per-upload knobs: the same input bytes under
// the same config always produce the same variant set.
type Config struct {
	ThumbMaxEdge int `yaml:"thumb_max_edge"`
	WebMaxEdge   int `yaml:"web_max_edge"`
	WebQuality   int `yaml:"web_quality"`
	BlurMaxEdge  int `yaml:"blur_max_edge"`

	FFmpegPath    string `yaml:"ffmpeg_path"`
	FFmpegTimeout int64  `yaml:"ffmpeg_timeout_in_ms"`
}

const (
	defaultThumbMaxEdge = 320
	defaultWebMaxEdge   = 1600
	defaultWebQuality   = 82
	defaultBlurMaxEdge  = 24
	thumbQuality        = 85
	blurQuality         = 40
)

func (c *Config) thumbMaxEdge() int {
	if c.ThumbMaxEdge > 0 {
		return c.ThumbMaxEdge
	}

	return defaultThumbMaxEdge
}

func (c *Config) webMaxEdge() int {
	if c.WebMaxEdge > 0 {
		return c.WebMaxEdge
	}

	return defaultWebMaxEdge
}

func (c *Config) webQuality() int {
	if c.WebQuality > 0 {
		return c.WebQuality
	}

	return defaultWebQuality
}

func (c *Config) blurMaxEdge() int {
	if c.BlurMaxEdge > 0 {
		return c.BlurMaxEdge
	}

	return defaultBlurMaxEdge
}
