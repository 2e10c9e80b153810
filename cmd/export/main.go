package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"geoatlas/internal/catalog"
	"geoatlas/internal/config"
	"geoatlas/internal/export"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

type Options struct {
	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Output     string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format     string `short:"f" long:"format" description:"Output format" choice:"csv" choice:"html" default:"csv"`
	Fields     string `long:"fields" description:"Comma-separated field groups to include (all if empty)"`
	Search     string `short:"s" long:"search" description:"Free-text filter over name, country and type"`
	Type       string `short:"t" long:"type" description:"Feature type filter" default:"all"`
	Sort       string `long:"sort" description:"Sort column (name, type, country, continent)"`
	Dir        string `long:"dir" description:"Sort direction" choice:"asc" choice:"desc" default:"asc"`
}

func main() {
	_ = godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	dataset, err := cfg.Dataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	cat, err := catalog.New(dataset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid dataset: %v\n", err)
		os.Exit(1)
	}

	features := cat.Filter(opts.Search, opts.Type)
	if field := catalog.ParseSortField(opts.Sort); field != catalog.SortNone {
		features = catalog.Sort(features, field, catalog.ParseDirection(opts.Dir))
	}

	fields := export.ParseFields(opts.Fields)
	now := time.Now()

	var outputData []byte
	if opts.Format == "html" {
		outputData, err = export.RenderHTML(export.BuildReport(features, fields, now))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
			os.Exit(1)
		}
	} else {
		outputData = []byte(export.CSV(features, fields))
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully exported %d features to %s (format: %s)\n",
			len(features), opts.Output, opts.Format)
	} else {
		fmt.Println(string(outputData))
	}
}
