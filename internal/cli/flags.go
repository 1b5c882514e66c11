package cli

import (
	"time"

	"gtp/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	Verbose    bool
	Jobs       int
	Timeout    time.Duration
	TimeoutSet bool
	Filter     string
	NoProgress bool
	Plain      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Jobs:       f.Jobs,
		Timeout:    f.Timeout,
		TimeoutSet: f.TimeoutSet,
		Filter:     f.Filter,
		NoProgress: f.NoProgress,
		Plain:      f.Plain,
	}
}
