package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danish45007/velocitybloom"
	"github.com/danish45007/velocitybloom/internal/probe"
	"github.com/urfave/cli"
)

var (
	itemsFlag = cli.Uint64Flag{
		Name:  "items",
		Value: 1000,
		Usage: "the number of keys the filter is expected to hold",
	}
	fpRateFlag = cli.Float64Flag{
		Name:  "fp-rate",
		Value: 0.01,
		Usage: "the acceptable false positive rate once the filter " +
			"holds --items keys",
	}
)

// maxCheckKeys bounds the number of keys check generates for each of
// --items and --absent.
const maxCheckKeys = 10_000_000

var (
	errBadItems  = fmt.Errorf("--items must be between 1 and %d", maxCheckKeys)
	errBadAbsent = fmt.Errorf("--absent must be between 0 and %d", maxCheckKeys)
)

func printJSON(w io.Writer, resp interface{}) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	_ = json.Indent(&out, b, "", "\t")
	out.WriteString("\n")
	_, err = out.WriteTo(w)
	return err
}

func configFromFlags(ctx *cli.Context) velocitybloom.Config {
	return velocitybloom.Config{
		ExpectedItems:     ctx.Uint64(itemsFlag.Name),
		FalsePositiveRate: ctx.Float64(fpRateFlag.Name),
	}
}

var paramsCommand = cli.Command{
	Name:  "params",
	Usage: "Derive filter capacity and hash count from a sizing target.",
	Flags: []cli.Flag{itemsFlag, fpRateFlag},
	Action: func(ctx *cli.Context) error {
		cfg := configFromFlags(ctx)
		capacity, hashCount, err := cfg.Params()
		if err != nil {
			return err
		}

		fpRate := velocitybloom.FalsePositiveRate(
			hashCount, cfg.ExpectedItems, capacity,
		)
		return printJSON(ctx.App.Writer, struct {
			CapacityBits uint32  `json:"capacity_bits"`
			Words        uint32  `json:"words"`
			HashCount    int     `json:"hash_count"`
			FPRate       float64 `json:"expected_fp_rate"`
		}{
			CapacityBits: capacity,
			Words:        capacity / velocitybloom.WordBits,
			HashCount:    hashCount,
			FPRate:       fpRate,
		})
	},
}

var checkCommand = cli.Command{
	Name:  "check",
	Usage: "Load synthetic keys into a filter and measure false positives.",
	Description: `
	Inserts --items keys of the form key-<i> into a filter sized from
	--items and --fp-rate, then queries every inserted key plus --absent
	keys of the form absent-<i> that were never inserted. The report compares
	the observed false positive rate with the estimate.

	With --default the filter is the fixed 32 bit, 3 hash filter instead.`,
	Flags: []cli.Flag{
		itemsFlag,
		fpRateFlag,
		cli.IntFlag{
			Name:  "absent",
			Value: 10000,
			Usage: "the number of never inserted keys to query",
		},
		cli.BoolFlag{
			Name:  "default",
			Usage: "use the fixed 32 bit, 3 hash filter",
		},
	},
	Action: check,
}

func check(ctx *cli.Context) error {
	cfg := configFromFlags(ctx)
	if cfg.ExpectedItems == 0 || cfg.ExpectedItems > maxCheckKeys {
		return errBadItems
	}
	numAbsent := ctx.Int("absent")
	if numAbsent < 0 || numAbsent > maxCheckKeys {
		return errBadAbsent
	}

	filter, err := buildFilter(cfg, ctx.Bool("default"))
	if err != nil {
		return err
	}

	keys := syntheticKeys("key", int(cfg.ExpectedItems))
	absent := syntheticKeys("absent", numAbsent)
	queries := make([]string, 0, len(keys)+len(absent))
	queries = append(queries, keys...)
	queries = append(queries, absent...)

	report := probe.Run(filter, keys, queries)
	if report.FalseNegatives != 0 {
		return fmt.Errorf("filter reported %d inserted keys as absent",
			report.FalseNegatives)
	}

	snapshot, err := filter.MarshalBinary()
	if err != nil {
		return err
	}

	return printJSON(ctx.App.Writer, struct {
		CapacityBits    uint32       `json:"capacity_bits"`
		HashCount       int          `json:"hash_count"`
		SetBits         uint         `json:"set_bits"`
		FillRatio       float64      `json:"fill_ratio"`
		EstimatedFPRate float64      `json:"estimated_fp_rate"`
		ObservedFPRate  float64      `json:"observed_fp_rate"`
		SnapshotBytes   int          `json:"snapshot_bytes"`
		Report          probe.Report `json:"report"`
	}{
		CapacityBits:    filter.Capacity(),
		HashCount:       filter.HashCount(),
		SetBits:         filter.SetBits(),
		FillRatio:       filter.FillRatio(),
		EstimatedFPRate: filter.EstimatedFalsePositiveRate(),
		ObservedFPRate:  report.FalsePositiveRate(),
		SnapshotBytes:   len(snapshot),
		Report:          report,
	})
}

func buildFilter(cfg velocitybloom.Config,
	useDefault bool) (*velocitybloom.BloomFilter, error) {

	if useDefault {
		mainLog.Infof("Using default filter: %d bits, %d hashes",
			velocitybloom.WordCount*velocitybloom.WordBits,
			velocitybloom.K)
		return velocitybloom.New(), nil
	}

	filter, err := velocitybloom.NewWithConfig(cfg, nil)
	if err != nil {
		return nil, err
	}
	mainLog.Infof("Sized filter for %d items at fp rate %v: %d bits, "+
		"%d hashes", cfg.ExpectedItems, cfg.FalsePositiveRate,
		filter.Capacity(), filter.HashCount())
	return filter, nil
}

func syntheticKeys(prefix string, n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return keys
}

var queryCommand = cli.Command{
	Name:      "query",
	Usage:     "Load keys into a filter and answer membership queries.",
	ArgsUsage: "[keys-file]",
	Description: `
	Reads newline separated keys from keys-file, or from stdin when no file
	is given, inserts them into a filter sized for that many keys at
	--fp-rate and answers membership for every --key. A key reported as
	"maybe" may be a false positive; "no" is definite.`,
	Flags: []cli.Flag{
		fpRateFlag,
		cli.StringSliceFlag{
			Name:  "key",
			Usage: "a key to query, may be repeated",
		},
	},
	Action: query,
}

func query(ctx *cli.Context) error {
	queries := ctx.StringSlice("key")
	if len(queries) == 0 {
		return cli.ShowCommandHelp(ctx, "query")
	}

	var r io.Reader = os.Stdin
	if ctx.NArg() > 0 {
		f, err := os.Open(ctx.Args().First())
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	keys, err := readKeys(r)
	if err != nil {
		return err
	}

	filter, err := loadFilter(keys, ctx.Float64(fpRateFlag.Name))
	if err != nil {
		return err
	}

	type answer struct {
		Key    string `json:"key"`
		Member string `json:"member"`
	}
	answers := make([]answer, 0, len(queries))
	for _, key := range queries {
		member := "no"
		if filter.Contains(key) {
			member = "maybe"
		}
		answers = append(answers, answer{Key: key, Member: member})
	}

	return printJSON(ctx.App.Writer, struct {
		Loaded  int      `json:"loaded"`
		Answers []answer `json:"answers"`
	}{
		Loaded:  len(keys),
		Answers: answers,
	})
}

// loadFilter builds a filter sized for keys and inserts all of them.
func loadFilter(keys []string, fpRate float64) (*velocitybloom.BloomFilter,
	error) {

	items := uint64(len(keys))
	if items == 0 {
		items = 1
	}
	filter, err := velocitybloom.NewWithConfig(velocitybloom.Config{
		ExpectedItems:     items,
		FalsePositiveRate: fpRate,
	}, nil)
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		filter.Insert(key)
	}
	mainLog.Debugf("Loaded %d keys, fill ratio %.3f", len(keys),
		filter.FillRatio())
	return filter, nil
}

// readKeys returns the non-empty lines of r.
func readKeys(r io.Reader) ([]string, error) {
	var keys []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key := strings.TrimRight(scanner.Text(), "\r")
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
