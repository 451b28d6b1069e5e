package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	lexidex "github.com/kailas-cloud/lexidex/pkg/sdk"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	dbPath         string
	dbVersion      string
	table          string
	morpheusBinary string
	stemlibPath    string
	lookupTimeout  time.Duration
	fields         string
	boltCache      string
	cacheTTL       time.Duration
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	o := &globalOptions{}

	root := &cobra.Command{
		Use:          "lexidexctl",
		Short:        "lexidexctl queries a Greek dictionary",
		Long:         "Headword lookup, entry retrieval and health checks against a lexidex dictionary file.",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.dbPath, "db", os.Getenv("DB_FILE_PATH"), "dictionary SQLite file (env DB_FILE_PATH)")
	pf.StringVar(&o.dbVersion, "db-version", os.Getenv("DB_VERSION"), "dataset version echoed in results (env DB_VERSION)")
	pf.StringVar(&o.table, "table", "", "dictionary table (default bailly)")
	pf.StringVar(&o.morpheusBinary, "morpheus-binary", os.Getenv("MORPHEUS_BINARY_PATH"), "cruncher binary path")
	pf.StringVar(&o.stemlibPath, "stemlib", os.Getenv("MORPHEUS_STEMLIB_PATH"), "stem library directory")
	pf.DurationVar(&o.lookupTimeout, "lookup-timeout", 100*time.Millisecond, "analyzer call deadline")
	pf.StringVar(&o.fields, "fields", "", "comma-separated fields to emit")
	pf.StringVar(&o.boltCache, "cache", "", "bbolt file caching analyzer answers")
	pf.DurationVar(&o.cacheTTL, "cache-ttl", 24*time.Hour, "analyzer cache entry lifetime")

	root.AddCommand(newLookupCmd(o))
	root.AddCommand(newEntryCmd(o))
	root.AddCommand(newRandomCmd(o))
	root.AddCommand(newBatchCmd(o))
	root.AddCommand(newHealthCmd(o))
	return root
}

// openClient builds an SDK client from the persistent flags.
func openClient(ctx context.Context, o *globalOptions) (*lexidex.Client, error) {
	if o.dbPath == "" {
		return nil, fmt.Errorf("dictionary path required: pass --db or set DB_FILE_PATH")
	}
	opts := []lexidex.Option{
		lexidex.WithDictionary(o.dbPath, o.dbVersion),
		lexidex.WithLookupTimeout(o.lookupTimeout),
	}
	if o.table != "" {
		opts = append(opts, lexidex.WithTable(o.table))
	}
	if o.morpheusBinary != "" {
		opts = append(opts, lexidex.WithMorpheus(o.morpheusBinary, o.stemlibPath))
	}
	if o.boltCache != "" {
		opts = append(opts, lexidex.WithBoltCache(o.boltCache, o.cacheTTL))
	}
	return lexidex.New(ctx, opts...)
}

// fieldList splits the --fields flag. Empty selects the defaults.
func (o *globalOptions) fieldList() []string {
	if o.fields == "" {
		return nil
	}
	return strings.Split(o.fields, ",")
}

// withClient opens a client, runs fn and closes the client.
func withClient(cmd *cobra.Command, o *globalOptions, fn func(c *lexidex.Client) (any, error)) error {
	c, err := openClient(cmd.Context(), o)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	out, err := fn(c)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
