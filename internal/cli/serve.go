package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tharunr07/folio/internal/server"
	"github.com/tharunr07/folio/internal/site"
)

type serveOpts struct {
	addr     string
	content  string
	density  float64
	variant  string
	noReveal bool
}

func (c *CLI) serveCommand() *cobra.Command {
	page := site.DefaultOptions()
	opts := serveOpts{
		addr:    defaultAddr(),
		content: os.Getenv(envContent),
		density: envDensityOr(page.Density),
		variant: string(page.Variant),
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Long: `Serve the portfolio page, its static assets and the JSON endpoints.

Defaults for --addr, --content and --density come from PORT, FOLIO_CONTENT
and FOLIO_DENSITY.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVarP(&opts.content, "content", "c", opts.content, "TOML content file (built-in copy when empty)")
	cmd.Flags().Float64Var(&opts.density, "density", opts.density, "particle density of the page background (1-100)")
	cmd.Flags().StringVar(&opts.variant, "variant", opts.variant, "particle variant: neural, grid, flow or nodes")
	cmd.Flags().BoolVar(&opts.noReveal, "no-reveal", false, "render every section visible instead of revealing on scroll")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOpts) error {
	if err := checkDensity(opts.density); err != nil {
		return err
	}
	variant, err := parseVariant(opts.variant)
	if err != nil {
		return err
	}
	s, err := c.loadSite(opts.content)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr: opts.addr,
		Site: s,
		Page: site.Options{
			Reveal:  !opts.noReveal,
			Density: opts.density,
			Variant: variant,
		},
		Logger: c.Logger,
	})
	return srv.Run(cmd.Context())
}
