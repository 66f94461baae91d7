package opts

import (
	"github.com/walteh/textclean/pkg/config"
	"github.com/walteh/textclean/pkg/log"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// Flags
	ConfigFile     string
	Debug          bool
	Atomic         bool
	Backup         bool
	KeepBlankLines bool
	Verbose        bool

	// Set up before any command runs
	Config *config.Config
	Logger *log.Logger
}

// Job returns the configured job with flag overrides applied. Positional
// paths replace the configured targets.
func (o *RootOpts) Job(paths []string) *config.Config {
	cfg := *o.Config
	if len(paths) > 0 {
		cfg.Targets = append([]string(nil), paths...)
	}
	cfg.Atomic = cfg.Atomic || o.Atomic
	cfg.Backup = cfg.Backup || o.Backup
	cfg.KeepBlankLines = cfg.KeepBlankLines || o.KeepBlankLines
	return &cfg
}
