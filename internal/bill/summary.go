package bill

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Bill set layout under the configured bill directory.
const (
	RawDir      = "raw"      // bills waiting for analysis
	AnalyzedDir = "analyzed" // analyzer output, <name>.md per raw bill
	ReportsDir  = "reports"  // exporter output
)

// Summary holds the counts shown in the Bill view. It is always recomputed
// from disk, never adjusted in place.
type Summary struct {
	// Unanalyzed is the number of raw bills without analyzer output.
	Unanalyzed int
	// Exportable is the number of analyzed bills available for export.
	Exportable int
	// Reports is the number of files already exported.
	Reports int
}

// Empty reports whether there is nothing to analyze or export.
func (s Summary) Empty() bool {
	return s.Unanalyzed == 0 && s.Exportable == 0
}

// Scan computes the Summary for the bill set rooted at dir.
// A missing directory is an empty bill set, not an error.
func Scan(dir string) (Summary, error) {
	var s Summary

	raw, err := listFiles(filepath.Join(dir, RawDir))
	if err != nil {
		return s, err
	}
	analyzed, err := listFiles(filepath.Join(dir, AnalyzedDir))
	if err != nil {
		return s, err
	}
	reports, err := listFiles(filepath.Join(dir, ReportsDir))
	if err != nil {
		return s, err
	}

	done := make(map[string]bool, len(analyzed))
	for _, name := range analyzed {
		if strings.EqualFold(filepath.Ext(name), ".md") {
			done[stem(name)] = true
			s.Exportable++
		}
	}
	for _, name := range raw {
		if !done[stem(name)] {
			s.Unanalyzed++
		}
	}
	s.Reports = len(reports)

	return s, nil
}

// listFiles returns the names of visible regular files in dir.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read bill directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
