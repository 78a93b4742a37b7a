// Package cli implements the mcomix-layout command-line interface.
//
// The commands expose the page layout engine: fitting page sizes to a screen
// (zoom), arranging them (layout, scroll), ordering file names (sort),
// rendering whole directories of images (render) and an interactive terminal
// preview (view). Preferences come from a TOML file and can be overridden
// per invocation with flags.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/thermitegod/mcomix-lite/pkg/buildinfo"
	"github.com/thermitegod/mcomix-lite/pkg/cache"
	"github.com/thermitegod/mcomix-lite/pkg/config"
	"github.com/thermitegod/mcomix-lite/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the preferences file location.
	ConfigPath string

	stats *cacheStats
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), stats: &cacheStats{}}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "mcomix-layout fits and arranges comic pages on a screen",
		Long: `mcomix-layout computes how comic pages are scaled and placed in a viewer:
fit modes, single and double page spreads, manga (right-to-left) reading,
vertical strips, scrolling and natural file name ordering.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "preferences file (default: $XDG_CONFIG_HOME/"+appName+"/"+config.FileName+")")

	root.AddCommand(c.zoomCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.scrollCommand())
	root.AddCommand(c.sortCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	fc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	return pipeline.NewRunner(fc, keyer, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// loadConfig reads the preferences file. A missing file yields defaults.
func (c *CLI) loadConfig() (*config.Config, error) {
	path, err := c.configPath()
	if err != nil {
		return config.Default(), nil
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded preferences", "path", path)
	return cfg, nil
}

func (c *CLI) configPath() (string, error) {
	if c.ConfigPath != "" {
		return c.ConfigPath, nil
	}
	return config.DefaultPath()
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/mcomix-layout/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
