package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/govec/internal/config"
	"github.com/philipparndt/govec/pkg/floatfmt"
	"github.com/philipparndt/govec/pkg/geometry"
	"github.com/spf13/cobra"
)

type showOptions struct {
	format string
	round  string
	tuple  bool
}

func newShowCmd(cfg config.Config) *cobra.Command {
	opts := showOptions{format: cfg.Format, round: cfg.Round}

	cmd := &cobra.Command{
		Use:   "show [x [y [z]]]",
		Short: "Print a vector",
		Long: `Build a vector from up to three components and print it.
Omitted components default to 0. Use -- before negative components:

  govec show -- -1 2.5`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "format specifier applied to each component (e.g. .2f)")
	cmd.Flags().StringVarP(&opts.round, "round", "r", opts.round, "round each component to the nearest multiple of this precision")
	cmd.Flags().BoolVarP(&opts.tuple, "tuple", "t", false, "print the components separated by spaces")
	cmd.MarkFlagsMutuallyExclusive("format", "tuple")

	return cmd
}

func runShow(out io.Writer, args []string, opts showOptions) error {
	v, err := geometry.Parse(args...)
	if err != nil {
		return err
	}

	if opts.round != "" {
		precision, err := strconv.ParseFloat(strings.TrimSpace(opts.round), geometry.ScalarBits)
		if err != nil {
			return geometry.WrapError(geometry.CodeInvalidArgument,
				fmt.Sprintf("invalid rounding precision '%s'", opts.round), err)
		}
		v = v.Round(geometry.Scalar(precision))
	}

	switch {
	case opts.tuple:
		tuple := v.AsTuple()
		parts := make([]string, len(tuple))
		for i, c := range tuple {
			parts[i] = floatfmt.Repr(float64(c))
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
	case opts.format != "":
		text, err := v.FormatSpec(opts.format)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	default:
		fmt.Fprintln(out, v)
	}
	return nil
}
