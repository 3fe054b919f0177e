package dataload

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jmgilman/pdsnd-github/schema"
)

// HumanizeName turns a dataset file name into a display name: the extension
// drops, underscores become spaces and words are title-cased.
func HumanizeName(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return cases.Title(language.English).String(strings.ReplaceAll(stem, "_", " "))
}

// Discover lists the CSV datasets under dataDir in path order. An empty
// result is ErrNoDatasets so callers can point users at the right directory.
func Discover(dataDir string) ([]schema.Dataset, error) {
	matches, err := filepath.Glob(filepath.Join(dataDir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("cannot scan %s for datasets: %w", dataDir, err)
	}
	sort.Strings(matches)

	datasets := make([]schema.Dataset, 0, len(matches))
	for _, path := range matches {
		datasets = append(datasets, schema.Dataset{Path: path, Name: HumanizeName(path)})
	}
	if len(datasets) == 0 {
		return nil, fmt.Errorf("no CSV files under %s: %w", dataDir, schema.ErrNoDatasets)
	}
	return datasets, nil
}

// Resolve maps a user-supplied dataset argument to a discovered dataset. An
// existing file path wins; otherwise the argument matches by file stem or
// display name, case-insensitively. An empty argument resolves only when the
// data directory holds exactly one dataset.
func Resolve(dataDir, arg string) (schema.Dataset, error) {
	arg = strings.TrimSpace(arg)
	if arg != "" {
		if info, err := os.Stat(arg); err == nil && !info.IsDir() {
			return schema.Dataset{Path: arg, Name: HumanizeName(arg)}, nil
		}
	}

	datasets, err := Discover(dataDir)
	if err != nil {
		return schema.Dataset{}, err
	}

	if arg == "" {
		if len(datasets) == 1 {
			return datasets[0], nil
		}
		return schema.Dataset{}, fmt.Errorf("pick one of the %d datasets under %s (available: %s)",
			len(datasets), dataDir, strings.Join(datasetStems(datasets), ", "))
	}

	for _, ds := range datasets {
		stem := strings.TrimSuffix(filepath.Base(ds.Path), filepath.Ext(ds.Path))
		if strings.EqualFold(stem, arg) || strings.EqualFold(ds.Name, arg) {
			return ds, nil
		}
	}
	return schema.Dataset{}, fmt.Errorf("no dataset named %q under %s (available: %s)",
		arg, dataDir, strings.Join(datasetStems(datasets), ", "))
}

func datasetStems(datasets []schema.Dataset) []string {
	stems := make([]string, len(datasets))
	for i, ds := range datasets {
		base := filepath.Base(ds.Path)
		stems[i] = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return stems
}
