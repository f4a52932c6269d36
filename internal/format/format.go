// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders datasets, category tables, and statistics for
// terminal output.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/medcat/internal/query"
	"github.com/pdiddy/medcat/pkg/types"
)

// DefaultTruncateLength bounds descriptions in non-detailed output.
const DefaultTruncateLength = 100

// Truncate shortens text to at most max runes, including the suffix,
// breaking at a word boundary when one exists. Whitespace runs are
// collapsed first.
func Truncate(text string, max int, suffix string) string {
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	cut := max - len([]rune(suffix))
	if cut < 0 {
		cut = 0
	}

	if cut > 0 {
		if idx := strings.LastIndex(string(runes[:cut]), " "); idx > 0 {
			return strings.TrimRight(string(runes[:cut])[:idx], " ") + suffix
		}
	}
	return strings.TrimRight(string(runes[:cut]), " ") + suffix
}

// urlFields pairs display labels with their dataset accessors, in
// output order.
var urlFields = []struct {
	label string
	value func(types.Dataset) string
}{
	{"Paper", func(d types.Dataset) string { return d.PaperURL }},
	{"Access", func(d types.Dataset) string { return d.AccessURL }},
	{"Data", func(d types.Dataset) string { return d.DataURL }},
	{"Information", func(d types.Dataset) string { return d.InformationURL }},
	{"Overview", func(d types.Dataset) string { return d.OverviewURL }},
}

// Dataset renders a single entry as indented lines. Without detailed
// the description is truncated at a word boundary; includeURLs controls
// whether the labeled link lines appear.
func Dataset(d types.Dataset, detailed, includeURLs bool, truncateLen int) string {
	if truncateLen <= 0 {
		truncateLen = DefaultTruncateLength
	}

	lines := []string{
		"Name: " + d.Name,
		"Category: " + d.Category,
	}

	if d.Description != "" {
		desc := d.Description
		if !detailed {
			desc = Truncate(desc, truncateLen, "...")
		}
		lines = append(lines, "Description: "+desc)
	}

	if includeURLs {
		for _, f := range urlFields {
			if url := f.value(d); url != "" {
				lines = append(lines, f.label+": "+url)
			}
		}
	}

	if d.RequiresRegistration {
		lines = append(lines, "Note: registration required")
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  ")
		sb.WriteString(line)
	}
	return sb.String()
}

// CategoryTable renders category counts as aligned rows. Alignment is
// display-width aware so wide characters in category names do not skew
// the count column.
func CategoryTable(counts []types.CategoryCount) string {
	if len(counts) == 0 {
		return "No categories found."
	}

	width := 0
	for _, c := range counts {
		if w := runewidth.StringWidth(c.Category); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for _, c := range counts {
		fmt.Fprintf(&sb, "  %s  %4d dataset(s)\n",
			runewidth.FillRight(c.Category, width), c.Count)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Stats renders summary statistics as a text report with a per-category
// distribution sorted by descending count.
func Stats(s query.Stats) string {
	var sb strings.Builder
	rule := strings.Repeat("=", 70)

	sb.WriteString(rule + "\n")
	sb.WriteString("DATASET CATALOG STATISTICS\n")
	sb.WriteString(rule + "\n\n")

	fmt.Fprintf(&sb, "Total Datasets:                    %d\n", s.TotalDatasets)
	fmt.Fprintf(&sb, "Total Categories:                  %d\n", s.Categories)
	fmt.Fprintf(&sb, "Datasets with Papers:              %d\n", s.WithPapers)
	fmt.Fprintf(&sb, "Datasets with Access Info:         %d\n", s.WithAccess)
	fmt.Fprintf(&sb, "Datasets Requiring Registration:   %d\n", s.RequireRegistration)

	if len(s.CategoryCounts) > 0 {
		sb.WriteString("\nCategory Distribution:\n")

		names := make([]string, 0, len(s.CategoryCounts))
		width := 0
		for name := range s.CategoryCounts {
			names = append(names, name)
			if w := runewidth.StringWidth(name); w > width {
				width = w
			}
		}
		sort.SliceStable(names, func(i, j int) bool {
			if s.CategoryCounts[names[i]] != s.CategoryCounts[names[j]] {
				return s.CategoryCounts[names[i]] > s.CategoryCounts[names[j]]
			}
			return names[i] < names[j]
		})

		for _, name := range names {
			count := s.CategoryCounts[name]
			pct := float64(count) / float64(s.TotalDatasets) * 100
			fmt.Fprintf(&sb, "  %s  %4d (%5.1f%%)\n",
				runewidth.FillRight(name, width), count, pct)
		}
	}

	sb.WriteString("\nURL Statistics:\n")
	fmt.Fprintf(&sb, "  Paper URLs:         %d\n", s.URLStats.PaperURLs)
	fmt.Fprintf(&sb, "  Access URLs:        %d\n", s.URLStats.AccessURLs)
	fmt.Fprintf(&sb, "  Data URLs:          %d\n", s.URLStats.DataURLs)
	fmt.Fprintf(&sb, "  Information URLs:   %d\n", s.URLStats.InformationURLs)
	fmt.Fprintf(&sb, "  Overview URLs:      %d\n", s.URLStats.OverviewURLs)

	if s.DescriptionStats.WithDescription > 0 {
		sb.WriteString("\nDescriptions:\n")
		fmt.Fprintf(&sb, "  With description:   %d\n", s.DescriptionStats.WithDescription)
		fmt.Fprintf(&sb, "  Average length:     %.1f\n", s.DescriptionStats.AverageLength)
		fmt.Fprintf(&sb, "  Max length:         %d\n", s.DescriptionStats.MaxLength)
		fmt.Fprintf(&sb, "  Min length:         %d\n", s.DescriptionStats.MinLength)
	}

	return strings.TrimRight(sb.String(), "\n")
}
