package cmd

import (
	"github.com/spf13/cobra"

	lexidex "github.com/kailas-cloud/lexidex/pkg/sdk"
)

func newLookupCmd(o *globalOptions) *cobra.Command {
	var (
		mode          string
		caseSensitive bool
		limit         int
		skipMorpheus  bool
		morphology    bool
	)

	c := &cobra.Command{
		Use:   "lookup <query>",
		Short: "Look up a headword",
		Long: "Matches headwords by prefix. ^ $ and \" anchor the query, ? and * are wildcards.\n" +
			"Queries may be typed in Greek, beta code or transliteration.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, o, func(c *lexidex.Client) (any, error) {
				return c.Lookup(cmd.Context(), lexidex.LookupRequest{
					Query:             args[0],
					InputMode:         lexidex.InputMode(mode),
					Fields:            o.fieldList(),
					CaseSensitive:     caseSensitive,
					Limit:             limit,
					SkipMorpheus:      skipMorpheus,
					IncludeMorphology: morphology,
				})
			})
		},
	}

	f := c.Flags()
	f.StringVarP(&mode, "mode", "m", string(lexidex.Greek), "input mode: greek, betacode, transliteration")
	f.BoolVarP(&caseSensitive, "case-sensitive", "c", false, "match letter case")
	f.IntVarP(&limit, "limit", "n", 0, "maximum number of entries")
	f.BoolVar(&skipMorpheus, "skip-morpheus", false, "do not run morphological analysis")
	f.BoolVar(&morphology, "morphology", false, "include the analysis in the output")
	return c
}
