package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/midbel/cli"

	"github.com/midbel/tabkit/table"
	"github.com/midbel/tabkit/value"
)

const (
	demoMinRows = 250
	demoMaxRows = 500
)

var defaultWords = []string{
	"apple", "bridge", "candle", "desert", "engine", "forest", "garden",
	"harbor", "island", "jungle", "kettle", "ladder", "meadow", "needle",
	"orchard", "pepper", "quartz", "river", "saddle", "timber", "velvet",
	"window", "yellow", "zephyr",
}

type DemoTableCommand struct {
	OutFile  string
	Columns  int
	Seed     int
	WordList string
}

func (c DemoTableCommand) Run(args []string) error {
	set := cli.NewFlagSet("demo")
	set.StringVar(&c.OutFile, "o", cfg.Output, "write result to output file")
	set.IntVar(&c.Columns, "n", 50, "number of columns")
	set.IntVar(&c.Seed, "s", 32, "seed of the random generator")
	set.StringVar(&c.WordList, "w", cfg.WordList, "file with one word per line")
	if err := set.Parse(args); err != nil {
		return err
	}
	words, err := loadWords(c.WordList)
	if err != nil {
		return err
	}
	tb, err := sampleTable(c.Columns, uint64(c.Seed), words)
	if err != nil {
		return err
	}
	return writeTable(tb, c.OutFile)
}

// sampleTable builds a table with a fixed first row followed by a random
// number of rows of integers, floats and words.
func sampleTable(columns int, seed uint64, words []string) (*table.Table, error) {
	var names []string
	for i := 0; i < columns; i++ {
		names = append(names, fmt.Sprintf("Column #%d", i))
	}
	tb, err := table.New(names)
	if err != nil {
		return nil, err
	}
	first := []value.Value{
		value.Str("this"),
		value.Str("is"),
		value.Str("the first"),
		value.Str("row"),
		value.Integer(47),
	}
	first = first[:min(columns, len(first))]
	for i := len(first); i < columns; i++ {
		first = append(first, value.Str(fmt.Sprintf("Some Data :) %d", i)))
	}
	if err := tb.AddRow(first); err != nil {
		return nil, err
	}

	var (
		rnd   = rand.New(rand.NewPCG(seed, seed))
		count = demoMinRows + rnd.IntN(demoMaxRows-demoMinRows)
	)
	for i := 0; i < count; i++ {
		row := make([]value.Value, columns)
		for j := range row {
			switch rnd.IntN(5) {
			case 0:
				row[j] = value.Integer(rnd.Int64N(1 << 31))
			case 1:
				row[j] = value.Number(rnd.Float64())
			default:
				row[j] = value.Str(words[rnd.IntN(len(words))])
			}
		}
		if err := tb.AddRow(row); err != nil {
			return nil, err
		}
	}
	return tb, nil
}

func loadWords(file string) ([]string, error) {
	if file == "" {
		return defaultWords, nil
	}
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var (
		words []string
		scan  = bufio.NewScanner(r)
	)
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: no words found", file)
	}
	return words, nil
}
