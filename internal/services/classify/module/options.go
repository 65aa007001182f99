package module

import (
	"runtime"

	"langsniff/internal/platform/config"
)

// Options holds configuration settings for the classify module.
// New applies them as given; FromConfig supplies env defaults for callers to override
type Options struct {
	Workers             int // <= 1 is sequential
	Quick               bool
	Preload             bool
	MinRelativeDistance float64
	MinConfidence       float64
	MinLetters          int
	All                 bool
	Multi               bool
}

// FromConfig extracts Options defaults from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	lc := cfg.Prefix("LANGSNIFF_")
	return Options{
		Workers:             lc.MayInt("WORKERS", runtime.NumCPU()),
		Quick:               lc.MayBool("QUICK", false),
		Preload:             lc.MayBool("PRELOAD", false),
		MinRelativeDistance: lc.MayFloat64("MIN_RELATIVE_DISTANCE", 0),
	}
}
