// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pdiddy/medcat/pkg/types"
)

// Options configures a Browser. The zero value discards log output.
type Options struct {
	// Log receives progress lines when Verbose is set. Nil discards.
	Log io.Writer

	// Verbose enables progress lines during load.
	Verbose bool
}

// Browser holds the parsed catalog and answers queries over it. The
// dataset slice is built once at construction and never mutated, so
// concurrent reads need no locking.
type Browser struct {
	path     string
	datasets []types.Dataset
}

// New reads and parses the catalog at path. A missing or unreadable
// source file is fatal at construction; a sparse or malformed document
// is not, and simply yields fewer datasets.
func New(path string, opts Options) (*Browser, error) {
	log := opts.Log
	if log == nil {
		log = io.Discard
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	b := &Browser{
		path:     path,
		datasets: Parse(string(data)),
	}

	if opts.Verbose {
		fmt.Fprintf(log, "parsed %d datasets across %d categories from %s\n",
			len(b.datasets), len(b.ListCategories()), path)
	}
	return b, nil
}

// Datasets returns the full parsed sequence in document order. Callers
// must not mutate the returned slice.
func (b *Browser) Datasets() []types.Dataset {
	return b.datasets
}

// Search returns the datasets whose name or description contains the
// query string, in document order. An empty query matches everything.
func (b *Browser) Search(query string, caseSensitive bool) []types.Dataset {
	if !caseSensitive {
		query = strings.ToLower(query)
	}

	var results []types.Dataset
	for _, d := range b.datasets {
		text := d.Name + " " + d.Description
		if !caseSensitive {
			text = strings.ToLower(text)
		}
		if strings.Contains(text, query) {
			results = append(results, d)
		}
	}
	return results
}

// BrowseByCategory returns the datasets in the named category in
// document order. Category names are parser-derived canonical strings,
// so the match is exact and case-sensitive. Unknown categories yield an
// empty result, never an error.
func (b *Browser) BrowseByCategory(category string) []types.Dataset {
	var results []types.Dataset
	for _, d := range b.datasets {
		if d.Category == category {
			results = append(results, d)
		}
	}
	return results
}

// ListCategories returns every category with its dataset count, ordered
// by descending count. Ties keep the order in which the categories
// first appear in the document.
func (b *Browser) ListCategories() []types.CategoryCount {
	counts := make(map[string]int)
	var order []string

	for _, d := range b.datasets {
		if _, ok := counts[d.Category]; !ok {
			order = append(order, d.Category)
		}
		counts[d.Category]++
	}

	// order already holds first-seen document order; the stable sort
	// preserves it for equal counts.
	result := make([]types.CategoryCount, 0, len(order))
	for _, cat := range order {
		result = append(result, types.CategoryCount{Category: cat, Count: counts[cat]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// GetByName returns the first dataset matching name. With exact set the
// match is a case-insensitive full comparison; otherwise a
// case-insensitive substring match. The second return value reports
// whether a dataset was found.
func (b *Browser) GetByName(name string, exact bool) (types.Dataset, bool) {
	lower := strings.ToLower(name)
	for _, d := range b.datasets {
		dl := strings.ToLower(d.Name)
		if exact && dl == lower {
			return d, true
		}
		if !exact && strings.Contains(dl, lower) {
			return d, true
		}
	}
	return types.Dataset{}, false
}
