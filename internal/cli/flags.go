package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pathways/internal/facet"
	"github.com/hupe1980/pathways/internal/pathway"
)

// filterOptions holds the facet selection given on the command line.
type filterOptions struct {
	actors     []string
	conditions []string
	incentives []string
	barriers   []string
	financed   string
}

// registerFilterFlags adds the facet filter flags to a cobra command.
func registerFilterFlags(cmd *cobra.Command, opts *filterOptions) {
	f := cmd.Flags()
	f.StringArrayVar(&opts.actors, "actor", nil, "filter by private sector actor (repeatable)")
	f.StringArrayVar(&opts.conditions, "condition", nil, "filter by enabling condition (repeatable)")
	f.StringArrayVar(&opts.incentives, "incentive", nil, "filter by incentive (repeatable)")
	f.StringArrayVar(&opts.barriers, "barrier", nil, "filter by barrier to address (repeatable)")
	f.StringVar(&opts.financed, "financed", "", "filter by what is being financed")
}

// selection converts the flags into a facet selection. Values outside the
// taxonomy are kept, since sheet editors may use values the taxonomy does
// not list yet, but are reported at warn level.
func (o *filterOptions) selection(tax pathway.Taxonomy, logger *slog.Logger) facet.Selection {
	sel := facet.NewSelection(o.actors, o.conditions, o.incentives, o.barriers, o.financed)

	for _, a := range sel.Active() {
		if !tax.Known(a.Facet, a.Value) {
			logger.Warn("filter value not in taxonomy",
				slog.String("facet", a.Facet.String()),
				slog.String("value", a.Value),
			)
		}
	}

	return sel
}
