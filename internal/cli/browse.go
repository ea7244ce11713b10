package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tharunr07/folio/internal/particle"
	"github.com/tharunr07/folio/internal/tui"
)

type browseOpts struct {
	content string
	density float64
	variant string
	seed    int64
}

func (c *CLI) browseCommand() *cobra.Command {
	opts := browseOpts{
		content: os.Getenv(envContent),
		density: envDensityOr(particle.DefaultDensity),
		variant: string(particle.Neural),
	}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the portfolio in the terminal",
		Long: `Browse the portfolio in the terminal over a live particle field.

Scroll with j/k, the arrow keys, space or the mouse wheel. Move the mouse to
pull nearby particles. Press q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSite(opts.content)
			if err != nil {
				return err
			}
			return c.runTUI(cmd, tui.Options{Site: s}, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.content, "content", "c", opts.content, "TOML content file (built-in copy when empty)")
	addFieldFlags(cmd, &opts)

	return cmd
}

func (c *CLI) fieldCommand() *cobra.Command {
	opts := browseOpts{
		density: envDensityOr(particle.DefaultDensity),
		variant: string(particle.Neural),
	}

	cmd := &cobra.Command{
		Use:   "field",
		Short: "Run the particle field on its own",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd, tui.Options{FieldOnly: true}, opts)
		},
	}

	addFieldFlags(cmd, &opts)

	return cmd
}

func addFieldFlags(cmd *cobra.Command, opts *browseOpts) {
	cmd.Flags().Float64Var(&opts.density, "density", opts.density, "particle density (1-100)")
	cmd.Flags().StringVar(&opts.variant, "variant", opts.variant, "particle variant: neural, grid, flow or nodes")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for a reproducible field (0 picks one)")
}

func (c *CLI) runTUI(cmd *cobra.Command, to tui.Options, opts browseOpts) error {
	if err := checkDensity(opts.density); err != nil {
		return err
	}
	variant, err := parseVariant(opts.variant)
	if err != nil {
		return err
	}

	screen, err := c.newScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	to.Density = opts.density
	to.Variant = variant
	to.Seed = opts.seed
	to.Logger = c.Logger
	return tui.New(screen, to).Run(cmd.Context())
}
