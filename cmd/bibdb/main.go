// Command bibdb parses bibtex databases: fmt prints a database in
// canonical form, check validates files, and authors lists the parsed
// author names of one entry.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bibtools/bibdb/bib"
	"github.com/bibtools/bibdb/latex"
	"github.com/bibtools/bibdb/parser"
)

var log = logrus.New()

// config is the optional YAML configuration read by --config.
type config struct {
	// AuthorFields overrides the candidate field names scanned for
	// authors, in order.
	AuthorFields []string `yaml:"author_fields"`
}

var (
	cfgPath string
	cfg     config
)

func loadConfig() error {
	if cfgPath == "" {
		return nil
	}
	raw, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", cfgPath, err)
	}
	return nil
}

func parsePath(path string) (*bib.Database, bib.StringTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return parser.Parse(raw)
}

func newFmtCmd() *cobra.Command {
	var encode, decode bool
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Parse a bibtex database and print it in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := parsePath(args[0])
			if err != nil {
				return err
			}
			for _, it := range db.Items() {
				for _, name := range it.Names() {
					v, _ := it.Get(name)
					switch {
					case encode:
						ev, err := latex.Encode(v)
						if err != nil {
							return fmt.Errorf("entry %q, field %q: %w", it.CiteKey, name, err)
						}
						it.Set(name, ev)
					case decode:
						it.Set(name, latex.Decode(v))
					}
				}
			}
			fmt.Print(db.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&encode, "encode", false, "replace LaTeX macros with their code points")
	cmd.Flags().BoolVar(&decode, "decode", false, "replace non-ASCII code points with LaTeX macros")
	cmd.MarkFlagsMutuallyExclusive("encode", "decode")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse each file and report syntax errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				db, strs, err := parsePath(path)
				if err != nil {
					log.WithField("file", path).Error(err)
					failed++
					continue
				}
				log.WithFields(logrus.Fields{
					"file":    path,
					"entries": db.Len(),
					"strings": len(strs),
				}).Info("ok")
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}

func newAuthorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "authors FILE KEY",
		Short: "Print the parsed authors of one entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := parsePath(args[0])
			if err != nil {
				return err
			}
			it, ok := db.Lookup(args[1])
			if !ok {
				return fmt.Errorf("no entry %q in %s", args[1], args[0])
			}
			authors, err := it.Authors(cfg.AuthorFields...)
			if err != nil {
				return fmt.Errorf("entry %q: %w", it.CiteKey, err)
			}
			for _, a := range authors {
				fmt.Println(a)
			}
			return nil
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:           "bibdb",
		Short:         "bibtex database toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	root.AddCommand(newFmtCmd(), newCheckCmd(), newAuthorsCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
