// Package cli implements the folio command-line interface.
//
// The page is served over HTTP with serve, browsed in the terminal with
// browse, and field runs the particle background on its own. All commands
// accept --verbose for debug logging.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/tharunr07/folio/internal/content"
	"github.com/tharunr07/folio/internal/particle"
)

const appName = "folio"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Environment overrides for flag defaults. A .env file in the working
// directory is loaded before these are read.
const (
	envPort    = "PORT"
	envContent = "FOLIO_CONTENT"
	envDensity = "FOLIO_DENSITY"
)

// Version is reported by --version. Release builds set it with -ldflags.
var Version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// newScreen opens the terminal for browse and field.
	newScreen func() (tcell.Screen, error)
}

func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
			Prefix:          appName,
		}),
		newScreen: tcell.NewScreen,
	}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "folio serves an animated single-page portfolio",
		Long:         `folio renders a personal portfolio page with a particle network background and scroll-triggered reveals, either over HTTP or directly in the terminal.`,
		Version:      Version,
		SilenceUsage: true,
	}

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.fieldCommand())

	return root
}

// loadSite reads the content file, falling back to the built-in copy when
// path is empty.
func (c *CLI) loadSite(path string) (*content.Site, error) {
	site, err := content.Load(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		c.Logger.Debug("loaded content", "path", path, "projects", len(site.Projects.Items))
	}
	return site, nil
}

func parseVariant(s string) (particle.Variant, error) {
	v, err := particle.ParseVariant(s)
	if err != nil {
		return "", fmt.Errorf("--variant: %w", err)
	}
	return v, nil
}

func checkDensity(d float64) error {
	if d <= 0 || d > 100 {
		return fmt.Errorf("--density must be in (0, 100], got %g", d)
	}
	return nil
}

func defaultAddr() string {
	if port := os.Getenv(envPort); port != "" {
		return ":" + port
	}
	return ":8080"
}

// envDensityOr returns FOLIO_DENSITY when it parses, otherwise fallback.
func envDensityOr(fallback float64) float64 {
	if v := os.Getenv(envDensity); v != "" {
		if d, err := strconv.ParseFloat(v, 64); err == nil {
			return d
		}
	}
	return fallback
}
