package commands

import (
	"flag"

	"github.com/fatih/color"

	"github.com/the-hitesh/auto-file-organizer/internal/config"
	"github.com/the-hitesh/auto-file-organizer/internal/organize"
	"github.com/the-hitesh/auto-file-organizer/internal/ui"
)

const configFileName = config.FileName

type commonFlags struct {
	noColor bool
	noEmoji bool
}

func addCommonFlags(fs *flag.FlagSet, c *commonFlags) {
	fs.BoolVar(&c.noColor, "no-color", false, "disable ANSI colors")
	fs.BoolVar(&c.noEmoji, "no-emoji", false, "disable emoji in output")
}

func applyCommonFlags(c commonFlags) ui.Theme {
	if c.noColor {
		color.NoColor = true
	}
	return ui.Theme{NoColor: c.noColor, NoEmoji: c.noEmoji}
}

// loadRules resolves the effective rules: an explicit --config file must
// exist, otherwise the per-user file is optional and the built-in mapping is
// the fallback.
func loadRules(configPath string) (organize.Rules, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.Discover()
}
