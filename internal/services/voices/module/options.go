package module

import (
	"time"

	"voiceloom/internal/platform/config"
	curatordomain "voiceloom/internal/services/curator/domain"
)

// Options holds configuration settings for the voices module
type Options struct {
	// Content source client
	TwitterBaseURL string
	TwitterAPIKey  string
	TwitterTimeout time.Duration

	// Generation client
	TextgenBaseURL string
	TextgenAPIKey  string
	TextgenModel   string
	TextgenTimeout time.Duration

	// Curation thresholds
	Curation curatordomain.Config

	// Profile extraction
	PromptBudget int
	Temperature  float64
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	tw := cfg.Prefix("SERVICE_TWITTERAPI_")
	tg := cfg.Prefix("SERVICE_TEXTGEN_")
	vc := cfg.Prefix("CORE_VOICES_")
	return Options{
		TwitterBaseURL: tw.MayString("BASE_URL", ""),
		TwitterAPIKey:  tw.MustString("API_KEY"),
		TwitterTimeout: tw.MayDuration("TIMEOUT", 0),

		TextgenBaseURL: tg.MustString("BASE_URL"),
		TextgenAPIKey:  tg.MustString("API_KEY"),
		TextgenModel:   tg.MayString("MODEL", ""),
		TextgenTimeout: tg.MayDuration("TIMEOUT", 0),

		Curation: curatordomain.Config{
			MaxAgeDays:     vc.MayInt("MAX_AGE_DAYS", 0),
			MinEngagement:  int64(vc.MayInt("MIN_ENGAGEMENT", 0)),
			Limit:          vc.MayInt("LIMIT", 0),
			HighEngagement: int64(vc.MayInt("HIGH_ENGAGEMENT_THRESHOLD", 0)),
		},

		PromptBudget: vc.MayInt("PROMPT_BUDGET", 0),
		Temperature:  vc.MayFloat64("EXTRACT_TEMPERATURE", 0.3),
	}
}
