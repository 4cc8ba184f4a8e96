// Package cli implements the dogen command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/syssam/dogen/compiler"
	"github.com/syssam/dogen/compiler/gen"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI against the process arguments and standard streams
// and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(args))
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// options holds the raw flag values of the root command.
type options struct {
	vendor     string
	module     string
	entity     string
	schema     string
	table      string
	attributes string
	root       string
	config     string
	dryRun     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var o options

	rootCmd := &cobra.Command{
		Use:   "dogen",
		Short: "Generate Magento 2 data objects from db_schema.xml",
		Long: `dogen reads a Magento 2 db_schema.xml file and writes a data interface
(Api/Data/{Entity}Interface.php) and a data model (Model/Data/{Entity}.php)
with one constant and one setter/getter pair per column of the chosen table.`,
		Example: `  dogen -v Bss -m CustomModule -db app/code/Bss/CustomModule/etc/db_schema.xml
  dogen -v Bss -m CustomModule -e Post -a "post_id:int,title,created_at:\DateTimeInterface"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &o)
		},
	}

	f := rootCmd.Flags()
	f.SetNormalizeFunc(normalizeFlagName)
	f.StringVarP(&o.vendor, "vendor", "v", "", "Vendor name (required)")
	f.StringVarP(&o.module, "module", "m", "", "Module name (required)")
	f.StringVarP(&o.entity, "entity", "e", "", "Entity name, derived from the table name when empty")
	f.StringVar(&o.schema, "db_schema", "", "Path to db_schema.xml file (shorthand -db)")
	f.StringVarP(&o.table, "table", "t", "", "Table to generate from, instead of prompting")
	f.StringVarP(&o.attributes, "attributes", "a", "", `Inline attribute list "name:type,name2", used instead of a schema`)
	f.StringVar(&o.root, "root", "", "Output root directory (default \""+gen.DefaultRoot+"\")")
	f.StringVar(&o.config, "config", defaultConfigFile, "Path to a YAML config file")
	f.BoolVar(&o.dryRun, "dry-run", false, "Print the files that would be written without writing them")
	f.BoolVar(&o.verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func runGenerate(cmd *cobra.Command, o *options) error {
	logger := newLogger(cmd.ErrOrStderr(), o.verbose)

	s, err := resolve(cmd.Flags(), o)
	if err != nil {
		return err
	}
	if err := s.validate(); err != nil {
		return err
	}
	logger.Debug("settings resolved", "vendor", s.Vendor, "module", s.Module, "root", s.Root, "schema", o.schema)

	req := &compiler.Request{
		Vendor:     s.Vendor,
		Module:     s.Module,
		Entity:     strings.TrimSpace(o.entity),
		Schema:     strings.TrimSpace(o.schema),
		Attributes: strings.TrimSpace(o.attributes),
		Selector:   newSelector(cmd, o.table),
	}
	res, err := compiler.Generate(req,
		gen.WithRoot(s.Root),
		gen.WithDryRun(o.dryRun),
		gen.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range res.Paths {
		if o.dryRun {
			_, _ = fmt.Fprintf(out, "Would generate: %s\n", p)
			continue
		}
		_, _ = fmt.Fprintf(out, "Generated: %s\n", p)
	}
	logger.Debug("generation finished",
		"entity", res.Context.Entity,
		"attributes", len(res.Context.Attributes),
		"files", res.Metrics.FilesGenerated,
		"bytes", res.Metrics.TotalBytes,
	)
	return nil
}

// newSelector picks by name when --table is set. Otherwise it prompts,
// showing the listing only when stdin is a terminal.
func newSelector(cmd *cobra.Command, table string) compiler.Selector {
	if table = strings.TrimSpace(table); table != "" {
		return compiler.NameSelector(table)
	}
	in := cmd.InOrStdin()
	sel := &compiler.PromptSelector{In: in, Out: io.Discard}
	if isTerminal(in) {
		sel.Out = cmd.OutOrStdout()
	}
	return sel
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// normalizeArgs rewrites the two-letter -db shorthand, which pflag cannot
// declare, into the long --db_schema flag.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		switch {
		case a == "--":
			return append(out, args[i:]...)
		case a == "-db":
			out = append(out, "--db_schema")
		case strings.HasPrefix(a, "-db="):
			out = append(out, "--db_schema="+strings.TrimPrefix(a, "-db="))
		default:
			out = append(out, a)
		}
	}
	return out
}

// normalizeFlagName accepts --db-schema as an alias of --db_schema.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "db-schema" {
		name = "db_schema"
	}
	return pflag.NormalizedName(name)
}
