package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/midbel/cli"
	"github.com/rs/zerolog/log"

	"github.com/midbel/tabkit/csv"
	"github.com/midbel/tabkit/doc"
	"github.com/midbel/tabkit/internal/config"
	"github.com/midbel/tabkit/internal/logger"
	"github.com/midbel/tabkit/manifest"
	"github.com/midbel/tabkit/oxml"
	"github.com/midbel/tabkit/table"
)

var errFail = errors.New("fail")

var (
	summary = "tabkit"
	help    = "render tabular data as a spreadsheet table"
)

var cfg = config.Default()

func main() {
	var err error
	if cfg, err = config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Init(cfg.LogLevel, cfg.LogFile)

	var (
		set  = cli.NewFlagSet("tabkit")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err = root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"build"}, &buildCmd)
	root.Register([]string{"convert"}, &convertCmd)
	root.Register([]string{"demo"}, &demoCmd)
	root.Register([]string{"preview"}, &previewCmd)
	root.Register([]string{"dump"}, &dumpCmd)
	return root
}

var buildCmd = cli.Command{
	Name:    "build",
	Alias:   []string{"new", "create"},
	Summary: "create a spreadsheet table from a yaml manifest",
	Usage:   "build [-o file] <manifest>",
	Handler: &BuildTableCommand{},
}

var convertCmd = cli.Command{
	Name:    "convert",
	Alias:   []string{"import"},
	Summary: "create a spreadsheet table from a csv file",
	Usage:   "convert [-o file] [-c comma] <file>",
	Handler: &ConvertTableCommand{},
}

var demoCmd = cli.Command{
	Name:    "demo",
	Summary: "create a spreadsheet table filled with random data",
	Usage:   "demo [-o file] [-n columns] [-s seed] [-w wordlist]",
	Handler: &DemoTableCommand{},
}

var previewCmd = cli.Command{
	Name:    "preview",
	Alias:   []string{"view", "show"},
	Summary: "print a manifest or a csv file as a table",
	Usage:   "preview [-n rows] [-c comma] [-f number] [-d date] [-r range] <file>",
	Handler: &PreviewTableCommand{},
}

var dumpCmd = cli.Command{
	Name:    "dump",
	Alias:   []string{"export"},
	Summary: "write the rows of a manifest or a csv file as csv",
	Usage:   "dump [-c comma] <file>",
	Handler: &DumpTableCommand{},
}

type BuildTableCommand struct {
	OutFile string
}

func (c BuildTableCommand) Run(args []string) error {
	set := cli.NewFlagSet("build")
	set.StringVar(&c.OutFile, "o", cfg.Output, "write result to output file")
	if err := set.Parse(args); err != nil {
		return err
	}
	tb, err := manifest.Open(set.Arg(0))
	if err != nil {
		return err
	}
	return writeTable(tb, c.OutFile)
}

type ConvertTableCommand struct {
	OutFile string
	Comma   string
}

func (c ConvertTableCommand) Run(args []string) error {
	set := cli.NewFlagSet("convert")
	set.StringVar(&c.OutFile, "o", cfg.Output, "write result to output file")
	set.StringVar(&c.Comma, "c", string(cfg.Comma), "fields separator")
	if err := set.Parse(args); err != nil {
		return err
	}
	comma, err := getComma(c.Comma)
	if err != nil {
		return err
	}
	tb, err := csv.Open(set.Arg(0), comma)
	if err != nil {
		return err
	}
	return writeTable(tb, c.OutFile)
}

type DumpTableCommand struct {
	Comma string
}

func (c DumpTableCommand) Run(args []string) error {
	set := cli.NewFlagSet("dump")
	set.StringVar(&c.Comma, "c", string(cfg.Comma), "fields separator")
	if err := set.Parse(args); err != nil {
		return err
	}
	comma, err := getComma(c.Comma)
	if err != nil {
		return err
	}
	tb, err := doc.Open(set.Arg(0), comma)
	if err != nil {
		return err
	}
	return csv.WriteTable(os.Stdout, tb, comma)
}

func writeTable(tb *table.Table, file string) error {
	if dir := filepath.Dir(file); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	opt := oxml.WithLogger(logger.Get())
	if err := tb.WriteFile(file, opt); err != nil {
		return err
	}
	dim := tb.Dimension()
	log.Info().
		Str("output", file).
		Int64("rows", dim.Lines).
		Int64("columns", dim.Columns).
		Msg("report generated")
	return nil
}

func getComma(str string) (byte, error) {
	if str == "" {
		return cfg.Comma, nil
	}
	if str == `\t` {
		return '\t', nil
	}
	if len(str) != 1 {
		return 0, fmt.Errorf("%s: separator should be a single character", str)
	}
	return str[0], nil
}
