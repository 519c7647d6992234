package module

import "voiceloom/internal/platform/config"

// Options holds configuration settings for the variations module
type Options struct {
	Temperature float64
	MaxIdeaLen  int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	vf := cfg.Prefix("CORE_VARIATIONS_")
	return Options{
		Temperature: vf.MayFloat64("TEMPERATURE", 0),
		MaxIdeaLen:  vf.MayInt("MAX_IDEA_LEN", 0),
	}
}
