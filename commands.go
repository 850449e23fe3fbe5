package unitsafe

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewCommand creates a Cobra command tree for unit conversion.
// The returned command should be added to a parent CLI's root command.
//
// Commands provided:
//   - units convert <value> <from-unit> <to-unit> [--precision n]
//   - units parse <text> [--to <unit>]
//   - units list [--family <name>]
//   - units info <label>
//
// Global flags: --json, --quiet, --verbose
func NewCommand(opts ...CommandOption) *cobra.Command {
	ccfg := &commandConfig{}
	for _, opt := range opts {
		opt(ccfg)
	}

	var (
		jsonOutput bool
		quiet      bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:          "units",
		Short:        "Convert and inspect physical quantities",
		Long:         "Convert values between commensurable units, parse quantity text, and inspect the compiled-in unit registry.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Add subcommands
	cmd.AddCommand(convertCmd(ccfg, &jsonOutput, &quiet, &verbose))
	cmd.AddCommand(parseCmd(ccfg, &jsonOutput, &quiet))
	cmd.AddCommand(listCmd(&jsonOutput))
	cmd.AddCommand(infoCmd(&jsonOutput))

	return cmd
}

func convertCmd(ccfg *commandConfig, jsonOutput, quiet, verbose *bool) *cobra.Command {
	var precision uint

	cmd := &cobra.Command{
		Use:   "convert <value> <from-unit> <to-unit>",
		Short: "Convert a value between commensurable units",
		Long:  "Convert a numeric value from one registered unit to another unit of the same dimension.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := Lookup(args[1])
			if err != nil {
				return err
			}
			target, err := Lookup(args[2])
			if err != nil {
				return err
			}
			q, err := from.FromString(args[0])
			if err != nil {
				return err
			}
			out, err := q.To(target)
			if err != nil {
				return err
			}

			if ccfg.logger != nil {
				ccfg.logger.Debug("converted quantity", "from", q.String(), "to", out.String())
			}

			var fopts []FormatOption
			if cmd.Flags().Changed("precision") {
				fopts = append(fopts, WithPrecision(precision))
			}
			return outputQuantity(cmd.OutOrStdout(), out, fopts, *jsonOutput, *quiet, *verbose)
		},
	}

	cmd.Flags().UintVar(&precision, "precision", 0, "Digits after the decimal point")
	return cmd
}

func parseCmd(ccfg *commandConfig, jsonOutput, quiet *bool) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse quantity text",
		Long:  `Parse text of the form "<number> <unit>" into a quantity, optionally converting it with --to.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := Parse(args[0])
			if err != nil {
				return err
			}
			if to != "" {
				target, err := Lookup(to)
				if err != nil {
					return err
				}
				q, err = q.To(target)
				if err != nil {
					return err
				}
			}

			if ccfg.logger != nil {
				ccfg.logger.Debug("parsed quantity", "text", args[0], "result", q.String())
			}
			return outputQuantity(cmd.OutOrStdout(), q, nil, *jsonOutput, *quiet, false)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Convert the parsed quantity to this unit")
	return cmd
}

func listCmd(jsonOutput *bool) *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered units",
		Long:  "List all registered units, or a single family with --family.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var units []Unit
			for _, label := range Labels() {
				u, err := Lookup(label)
				if err != nil {
					return err
				}
				if family != "" && u.Family() != family {
					continue
				}
				units = append(units, u)
			}
			if *jsonOutput {
				return outputUnitsJSON(cmd.OutOrStdout(), units)
			}
			return outputUnitsTable(cmd.OutOrStdout(), units)
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "Only list units of this family")
	return cmd
}

func infoCmd(jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "info <label>",
		Short: "Show one unit's definition",
		Long:  "Show the registered definition of a unit: family, dimension, scale and offset.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := Lookup(args[0])
			if err != nil {
				return err
			}
			if *jsonOutput {
				return outputUnitsJSON(cmd.OutOrStdout(), []Unit{u})
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Label:     %s\n", u.Label)
			fmt.Fprintf(w, "Family:    %s\n", u.Family())
			fmt.Fprintf(w, "Dimension: %s\n", u.Dimension)
			fmt.Fprintf(w, "Scale:     %g\n", u.Scale)
			fmt.Fprintf(w, "Offset:    %g\n", u.Offset)
			return nil
		},
	}
}

// quantityJSON is the JSON shape for a quantity. Values are rendered as
// strings so that ±Infinity survives encoding.
type quantityJSON struct {
	Text      string `json:"text"`
	Value     string `json:"value"`
	Label     string `json:"label"`
	Canonical string `json:"canonical"`
	Dimension string `json:"dimension"`
}

// unitJSON is the JSON shape for a registry entry.
type unitJSON struct {
	Label     string  `json:"label"`
	Family    string  `json:"family"`
	Dimension string  `json:"dimension"`
	Scale     float64 `json:"scale"`
	Offset    float64 `json:"offset,omitempty"`
}

func outputQuantity(w io.Writer, q Quantity, fopts []FormatOption, jsonOutput, quiet, verbose bool) error {
	switch {
	case jsonOutput:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(quantityJSON{
			Text:      q.Format(fopts...),
			Value:     formatValue(q.Value(), appliedFormat(fopts)),
			Label:     q.Label(),
			Canonical: formatValue(q.Canonical(), formatConfig{}),
			Dimension: q.Dimension().String(),
		})
	case quiet:
		_, err := fmt.Fprintln(w, formatValue(q.Value(), appliedFormat(fopts)))
		return err
	default:
		if _, err := fmt.Fprintln(w, q.Format(fopts...)); err != nil {
			return err
		}
		if verbose {
			if _, err := fmt.Fprintf(w, "canonical: %s\ndimension: %s\n",
				formatValue(q.Canonical(), formatConfig{}), q.Dimension()); err != nil {
				return err
			}
		}
		return nil
	}
}

func appliedFormat(fopts []FormatOption) formatConfig {
	var cfg formatConfig
	for _, opt := range fopts {
		opt(&cfg)
	}
	return cfg
}

func outputUnitsTable(w io.Writer, units []Unit) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tFAMILY\tDIMENSION\tSCALE\tOFFSET")
	for _, u := range units {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%g\n", u.Label, u.Family(), u.Dimension, u.Scale, u.Offset)
	}
	return tw.Flush()
}

func outputUnitsJSON(w io.Writer, units []Unit) error {
	out := make([]unitJSON, len(units))
	for i, u := range units {
		out[i] = unitJSON{
			Label:     u.Label,
			Family:    u.Family(),
			Dimension: u.Dimension.String(),
			Scale:     u.Scale,
			Offset:    u.Offset,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
