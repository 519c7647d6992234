package module

import (
	"voiceloom/internal/platform/config"
	curatordomain "voiceloom/internal/services/curator/domain"
)

// Options holds configuration settings for the training module
type Options struct {
	Curation curatordomain.Config
}

// FromConfig reads configuration settings from the config.Conf
// the curation knobs intentionally share the CORE_VOICES_ prefix, training and
// refresh must curate identically
func FromConfig(cfg config.Conf) Options {
	vc := cfg.Prefix("CORE_VOICES_")
	return Options{
		Curation: curatordomain.Config{
			MaxAgeDays:     vc.MayInt("MAX_AGE_DAYS", 0),
			MinEngagement:  int64(vc.MayInt("MIN_ENGAGEMENT", 0)),
			Limit:          vc.MayInt("LIMIT", 0),
			HighEngagement: int64(vc.MayInt("HIGH_ENGAGEMENT_THRESHOLD", 0)),
		},
	}
}
