package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/pathways/internal/config"
	"github.com/hupe1980/pathways/internal/logging"
	"github.com/hupe1980/pathways/internal/pathway"
)

type taxonomyOptions struct {
	format string
	check  bool
}

func newTaxonomyCommand() *cobra.Command {
	opts := &taxonomyOptions{}

	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the facet taxonomies",
		Long: `Taxonomy prints the ordered filter options of every facet group: the
built-in lists with any overrides from the taxonomy section of the config
file applied.

With --check the sheet is loaded and every value the sheet uses that the
taxonomy does not list is reported. Such values are kept on the pathways
but cannot be selected as a filter chip.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTaxonomy(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "table", "output format: table, yaml, json")
	f.BoolVar(&opts.check, "check", false, "report sheet values missing from the taxonomy")

	return cmd
}

func runTaxonomy(cmd *cobra.Command, opts *taxonomyOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	tax := cfg.EffectiveTaxonomy()
	w := cmd.OutOrStdout()

	if opts.check {
		res, err := loadPathways(ctx, cfg, logging.FromContext(ctx), cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		return writeUnknown(w, tax, res.Pathways)
	}

	var (
		data []byte
		err  error
	)

	switch opts.format {
	case "table":
		return writeTaxonomyTable(w, tax)
	case "yaml":
		data, err = taxonomyYAML(tax)
	case "json":
		data, err = taxonomyJSON(tax)
	default:
		return &ExitError{Code: exitUsage, Err: fmt.Errorf("unknown format %q: expected table, yaml, json", opts.format)}
	}

	if err != nil {
		return &ExitError{Code: exitError, Err: err}
	}

	_, err = w.Write(data)

	return err
}

func taxonomyJSON(tax pathway.Taxonomy) ([]byte, error) {
	data, err := json.MarshalIndent(tax, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing taxonomy: %w", err)
	}

	return append(data, '\n'), nil
}

func taxonomyYAML(tax pathway.Taxonomy) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(tax); err != nil {
		return nil, fmt.Errorf("serializing taxonomy: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("serializing taxonomy: %w", err)
	}

	return buf.Bytes(), nil
}

func writeTaxonomyTable(w io.Writer, tax pathway.Taxonomy) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "FACET\t#\tVALUE")

	for _, f := range pathway.Facets {
		for i, v := range tax.Values(f) {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", f, i+1, v)
		}
	}

	return tw.Flush()
}

func writeUnknown(w io.Writer, tax pathway.Taxonomy, records []pathway.Pathway) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	found := 0

	for _, f := range pathway.Facets {
		for _, v := range tax.Unknown(f, records) {
			if found == 0 {
				fmt.Fprintln(tw, "FACET\tVALUE")
			}

			fmt.Fprintf(tw, "%s\t%s\n", f, v)
			found++
		}
	}

	if found == 0 {
		fmt.Fprintf(tw, "all values of %d pathways are in the taxonomy\n", len(records))
	}

	return tw.Flush()
}
