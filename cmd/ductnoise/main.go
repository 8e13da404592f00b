package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hvackit/ductnoise/internal/cli"
	"github.com/hvackit/ductnoise/internal/engine"
	"github.com/hvackit/ductnoise/pkg/models"
	"github.com/rs/zerolog"
)

var version = "1.0.0"

// CLI defines the command-line interface
type CLI struct {
	Version bool     `short:"v" help:"Show version information"`
	JSON    bool     `help:"Emit raw JSON results instead of tables"`
	Trail   bool     `help:"Show the per-element diagnostic trail"`
	Workers int      `short:"w" default:"0" help:"Worker count for multi-path files; 0 uses one per CPU"`
	Verbose bool     `help:"Log calculation details to stderr"`
	Files   []string `arg:"" name:"files" help:"Path or path set JSON files to calculate" type:"existingfile" optional:""`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("ductnoise"),
		kong.Description("HVAC duct path noise calculator"),
		kong.UsageOnError(),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Validate input
	if len(cliArgs.Files) == 0 {
		cli.PrintError("No input files specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	logger := zerolog.Nop()
	if cliArgs.Verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	eng := engine.New(logger)

	failed := false
	for _, path := range cliArgs.Files {
		results, err := calculateFile(eng, path, cliArgs.Workers)
		if err != nil {
			cli.PrintError(fmt.Sprintf("%s: %v", path, err))
			failed = true
			continue
		}

		if cliArgs.JSON {
			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				cli.PrintError(fmt.Sprintf("%s: %v", path, err))
				failed = true
				continue
			}
			fmt.Println(string(out))
		} else {
			for _, result := range results {
				fmt.Println(cli.RenderResult(result, cliArgs.Trail))
			}
		}

		for _, result := range results {
			if result.Error != "" {
				failed = true
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}

// calculateFile loads one JSON file and calculates its paths. A file may
// hold either a single PathInput or a PathSet document.
func calculateFile(eng *engine.Engine, path string, workers int) ([]models.PathResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var set models.PathSet
	if err := json.Unmarshal(data, &set); err == nil && len(set.Paths) > 0 {
		return eng.CalculateBatch(context.Background(), set.Paths, workers), nil
	}

	var input models.PathInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("file is neither a path nor a path set document: %w", err)
	}
	if len(input.Components) == 0 {
		return nil, fmt.Errorf("file contains no components")
	}

	result, err := eng.CalculatePath(input)
	if err != nil {
		return nil, err
	}
	return []models.PathResult{*result}, nil
}
