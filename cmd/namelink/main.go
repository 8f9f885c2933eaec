// Command namelink scores a list of query names against a list of candidate
// names with a bit-parallel Jaro-Winkler kernel and writes one match file
// per query row.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/antzucaro/matchr"
	"go.uber.org/zap"

	"github.com/foundrylink/namelink/config"
	"github.com/foundrylink/namelink/errors"
	"github.com/foundrylink/namelink/link"
	"github.com/foundrylink/namelink/logging"
	"github.com/foundrylink/namelink/normalize"
)

func main() {
	var (
		queryPath      = flag.String("query", "", "path to newline-delimited query names (required)")
		candidatePath  = flag.String("candidates", "", "path to newline-delimited candidate names (required)")
		outputDir      = flag.String("output", "", "directory to write <id>.txt match files into (required)")
		minScore       = flag.Float64("min-score", 0.0, "minimum score a candidate must reach to be emitted")
		workers        = flag.Int("workers", 0, "concurrent query workers (0 selects GOMAXPROCS)")
		configPath     = flag.String("config", "", "optional YAML config file, overridden by flags and env vars")
		logLevel       = flag.String("log-level", "", "log level: TRACE, DEBUG, INFO, WARN, ERROR, FATAL, NONE")
		verifyRef      = flag.Bool("verify-reference", false, "log divergence against the matchr reference implementation")
		progressToTerm = flag.Bool("progress", false, "print progress to stderr as queries complete")
	)
	flag.Parse()

	if *queryPath == "" || *candidatePath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "namelink: --query, --candidates, and --output are required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(resolveConfigPath(*configPath))
	if err != nil {
		fail(err)
	}
	if err := config.ApplyEnvOverrides(cfg, config.DefaultEnvSpecs()); err != nil {
		fail(err)
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger, err := logging.NewCLI("namelink")
	if err != nil {
		fail(err)
	}
	logger.SetLevel(logging.ParseSeverity(cfg.LogLevel))
	defer logger.Sync()

	queries, err := readNames(*queryPath)
	if err != nil {
		fail(err)
	}
	candidates, err := readNames(*candidatePath)
	if err != nil {
		fail(err)
	}

	opts := link.DefaultOptions()
	opts.Workers = cfg.Workers
	opts.BufferBytes = cfg.BufferBytes
	opts.Logger = logger
	if *progressToTerm {
		opts.Progress = func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rnamelink: %d/%d queries scored", done, total)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}
	if *verifyRef {
		opts.Reference = func(a, b string) float64 {
			return matchr.JaroWinkler(a, b, false)
		}
	}

	threshold := cfg.MinScore
	if *minScore != 0.0 {
		threshold = *minScore
	}

	if err := link.ScoreAll(context.Background(), queries, candidates, *outputDir, threshold, opts); err != nil {
		logger.Error("scoring run failed", zap.Error(err))
		fail(err)
	}
}

// readNames reads one name per line, folding each with normalize.Fold
// (lowercase, accent-stripped, whitespace-collapsed); alphabet validation
// happens downstream in kernel.BuildIndex/BuildQueryMasks.
func readNames(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is an operator-supplied CLI argument
	if err != nil {
		return nil, errors.NewErrorEnvelope(errors.CodeIO, "opening input file").
			WithSeverity(errors.SeverityHigh).
			WithOriginal(err).
			WithContext(map[string]interface{}{"path": path})
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		names = append(names, normalize.Fold(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewErrorEnvelope(errors.CodeIO, "reading input file").
			WithSeverity(errors.SeverityHigh).
			WithOriginal(err).
			WithContext(map[string]interface{}{"path": path})
	}
	return names, nil
}

// resolveConfigPath honors an explicit --config flag, otherwise searches
// config.GetAppConfigPaths("namelink") in priority order and returns the
// first path that exists. If none exist, config.Load falls back to
// defaults on an empty path.
func resolveConfigPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	for _, candidate := range config.GetAppConfigPaths("namelink") {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "namelink: %v\n", err)
	if env, ok := err.(*errors.ErrorEnvelope); ok && env.ExitCode != nil {
		os.Exit(*env.ExitCode)
	}
	os.Exit(1)
}
