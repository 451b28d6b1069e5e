package cmd

import (
	"github.com/spf13/cobra"

	lexidex "github.com/kailas-cloud/lexidex/pkg/sdk"
)

func newEntryCmd(o *globalOptions) *cobra.Command {
	var siblings bool

	c := &cobra.Command{
		Use:   "entry <uri>",
		Short: "Fetch an entry by URI",
		Long:  "Prints the entry with its homographs. A missing entry prints an empty object.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, o, func(c *lexidex.Client) (any, error) {
				return c.Entry(cmd.Context(), args[0], o.fieldList(), siblings)
			})
		},
	}
	c.Flags().BoolVarP(&siblings, "siblings", "s", false, "include the previous and next entries")
	return c
}

func newRandomCmd(o *globalOptions) *cobra.Command {
	var lengthRange []int

	c := &cobra.Command{
		Use:   "random",
		Short: "Print a random entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, o, func(c *lexidex.Client) (any, error) {
				return c.RandomEntry(cmd.Context(), o.fieldList(), lengthRange...)
			})
		},
	}
	c.Flags().IntSliceVarP(&lengthRange, "length", "l", nil,
		"definition length: one value is a minimum, two values a range")
	return c
}

func newBatchCmd(o *globalOptions) *cobra.Command {
	var offset, limit int

	c := &cobra.Command{
		Use:   "batch",
		Short: "Dump grouped entries with their neighbours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, o, func(c *lexidex.Client) (any, error) {
				return c.EntryBatch(cmd.Context(), o.fieldList(), offset, limit)
			})
		},
	}
	c.Flags().IntVar(&offset, "offset", 0, "first entry")
	c.Flags().IntVar(&limit, "limit", 0, "number of entries, 0 for all")
	return c
}
