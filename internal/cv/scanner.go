package cv

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

const defaultScanWorkers = 4

// Scanner reads every resume in a directory and extracts its contact block.
type Scanner struct {
	reader  TextReader
	workers int
}

func NewScanner(reader TextReader, workers int) *Scanner {
	if workers <= 0 {
		workers = defaultScanWorkers
	}
	return &Scanner{reader: reader, workers: workers}
}

// ScanDir extracts one candidate per supported file in dir, ordered by file
// name. The source id of each candidate is the file name. Unreadable files
// produce a candidate with an error marker; they never fail the scan.
func (s *Scanner) ScanDir(ctx context.Context, dir string) ([]ExtractedCandidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan resume directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsSupported(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	log.Printf("[Scan] Found %d resume files in %s", len(names), dir)

	results := make([]ExtractedCandidate, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.scanFile(filepath.Join(dir, name), name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan cancelled: %w", err)
	}
	return results, nil
}

func (s *Scanner) scanFile(path, sourceID string) ExtractedCandidate {
	log.Printf("[Scan] Processing: %s", sourceID)

	text, err := s.reader.ReadText(path)
	if err != nil {
		log.Printf("[Scan] Error reading %s: %v", sourceID, err)
		return ExtractedCandidate{SourceID: sourceID, Error: ErrNoText}
	}
	return Extract(sourceID, text)
}
