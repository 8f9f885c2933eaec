// Package link schedules unique-query scoring across a worker pool and
// fans the kernel's results back out to every original row identifier that
// shared a query or candidate name.
package link

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/foundrylink/namelink/errors"
	"github.com/foundrylink/namelink/kernel"
	"github.com/foundrylink/namelink/linkset"
	"github.com/foundrylink/namelink/telemetry"
)

// ScoreAll is the programmatic entry point (§6): score every queryNames[i]
// against every candidateNames[j], writing one file per original query
// index to outputDir. Each file's lines are "<j>,<score>" for candidates
// scoring at least minScore, ordered by ascending unique-candidate rank.
func ScoreAll(ctx context.Context, queryNames, candidateNames []string, outputDir string, minScore float64, opts Options) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.NewErrorEnvelope(errors.CodeIO, "creating output directory").
			WithSeverity(errors.SeverityHigh).
			WithOriginal(err).
			WithContext(map[string]interface{}{"output_dir": outputDir})
	}

	uniqueQueries := linkset.NewUniqueSet(queryNames)
	uniqueCandidates := linkset.NewUniqueSet(candidateNames)

	idx, err := kernel.BuildIndex(uniqueCandidates.NameBytes())
	if err != nil {
		return wrapDomainError(err, "building candidate index")
	}
	tmpl := kernel.NewTemplate(idx)

	total := uniqueQueries.Len()
	var done int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workerCount())

	for rank := 0; rank < total; rank++ {
		rank := rank
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := scoreOneQuery(idx, tmpl, uniqueQueries, uniqueCandidates, rank, minScore, outputDir, opts)
			if opts.Progress != nil {
				opts.Progress(int(atomic.AddInt64(&done, 1)), total)
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return nil
}

func scoreOneQuery(
	idx *kernel.Index,
	tmpl *kernel.Template,
	uniqueQueries, uniqueCandidates *linkset.UniqueSet,
	queryRank int,
	minScore float64,
	outputDir string,
	opts Options,
) error {
	name := uniqueQueries.Names()[queryRank]

	matches, err := kernel.ScoreQuery(idx, tmpl, []byte(name), minScore)
	if err != nil {
		return wrapDomainError(err, "scoring query "+name)
	}
	telemetry.Global.IncQueriesScored()

	if opts.Reference != nil {
		logReferenceDivergence(opts, queryRank, name, uniqueCandidates, matches)
	}

	writers, err := openWritersForQuery(uniqueQueries, queryRank, outputDir, opts.bufferBytes())
	if err != nil {
		return err
	}
	defer closeWriters(writers, queryRank, opts)

	emitted := 0
	for _, m := range matches {
		for _, candidateID := range uniqueCandidates.Positions(m.CandidateIndex) {
			for _, w := range writers {
				if err := w.WriteMatch(candidateID, m.Score); err != nil {
					return errors.NewErrorEnvelope(errors.CodeIO, "writing match record").
						WithSeverity(errors.SeverityHigh).
						WithOriginal(err)
				}
				emitted++
			}
		}
	}
	telemetry.Global.AddMatchesEmitted(emitted)

	return nil
}

func openWritersForQuery(uniqueQueries *linkset.UniqueSet, queryRank int, outputDir string, bufferBytes int) ([]*outputWriter, error) {
	positions := uniqueQueries.Positions(queryRank)
	writers := make([]*outputWriter, 0, len(positions))
	for _, originalID := range positions {
		path := filepath.Join(outputDir, strconv.Itoa(originalID)+".txt")
		w, err := newOutputWriter(path, bufferBytes)
		if err != nil {
			closeWriters(writers, queryRank, Options{})
			return nil, errors.NewErrorEnvelope(errors.CodeIO, "opening output file").
				WithSeverity(errors.SeverityHigh).
				WithOriginal(err).
				WithContext(map[string]interface{}{"path": path})
		}
		writers = append(writers, w)
	}
	return writers, nil
}

func closeWriters(writers []*outputWriter, queryIndex int, opts Options) {
	for i, w := range writers {
		if err := w.Close(); err != nil && opts.Logger != nil {
			opts.Logger.WithComponent("link").WithFields(map[string]any{
				"query_index":  queryIndex,
				"writer_index": i,
			}).Warn("failed to close output file")
		}
	}
}

func logReferenceDivergence(opts Options, queryRank int, queryName string, uniqueCandidates *linkset.UniqueSet, matches []kernel.Match) {
	if opts.Logger == nil {
		return
	}
	logger := opts.Logger.WithComponent("link")
	for _, m := range matches {
		candidateName := uniqueCandidates.Names()[m.CandidateIndex]
		reference := opts.Reference(queryName, candidateName)
		delta := m.Score - reference
		if delta < 0 {
			delta = -delta
		}
		if delta > 0.02 {
			logger.WithFields(map[string]any{
				"query_index":     queryRank,
				"candidate_index": m.CandidateIndex,
			}).Warn("kernel score diverges from reference beyond envelope")
		}
	}
}

func wrapDomainError(err error, message string) error {
	return errors.NewErrorEnvelope(errors.CodeDomain, message).
		WithSeverity(errors.SeverityMedium).
		WithOriginal(err)
}
