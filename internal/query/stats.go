// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import "github.com/pdiddy/medcat/pkg/types"

// URLStats counts datasets carrying each URL field.
type URLStats struct {
	PaperURLs       int `json:"paper_urls" yaml:"paper_urls"`
	AccessURLs      int `json:"access_urls" yaml:"access_urls"`
	DataURLs        int `json:"data_urls" yaml:"data_urls"`
	InformationURLs int `json:"information_urls" yaml:"information_urls"`
	OverviewURLs    int `json:"overview_urls" yaml:"overview_urls"`
}

// DescriptionStats summarizes description lengths in runes of UTF-8
// text. Min is 0 when no dataset has a description, so callers never
// see an infinite sentinel.
type DescriptionStats struct {
	WithDescription int     `json:"with_description" yaml:"with_description"`
	AverageLength   float64 `json:"average_length" yaml:"average_length"`
	MaxLength       int     `json:"max_length" yaml:"max_length"`
	MinLength       int     `json:"min_length" yaml:"min_length"`
}

// Stats is the summary view of a dataset collection.
type Stats struct {
	TotalDatasets       int              `json:"total_datasets" yaml:"total_datasets"`
	Categories          int              `json:"categories" yaml:"categories"`
	CategoryCounts      map[string]int   `json:"category_counts" yaml:"category_counts"`
	WithPapers          int              `json:"datasets_with_papers" yaml:"datasets_with_papers"`
	WithAccess          int              `json:"datasets_with_access" yaml:"datasets_with_access"`
	RequireRegistration int              `json:"datasets_requiring_registration" yaml:"datasets_requiring_registration"`
	URLStats            URLStats         `json:"url_statistics" yaml:"url_statistics"`
	DescriptionStats    DescriptionStats `json:"description_statistics" yaml:"description_statistics"`
}

// Summarize computes summary statistics over the collection. An empty
// collection yields all-zero statistics rather than an error.
func Summarize(datasets []types.Dataset) Stats {
	stats := Stats{
		TotalDatasets:  len(datasets),
		CategoryCounts: make(map[string]int),
	}

	var descLengths []int
	for _, d := range datasets {
		stats.CategoryCounts[d.Category]++

		if d.HasPaper() {
			stats.WithPapers++
			stats.URLStats.PaperURLs++
		}
		if d.HasAccess() {
			stats.WithAccess++
		}
		if d.AccessURL != "" {
			stats.URLStats.AccessURLs++
		}
		if d.DataURL != "" {
			stats.URLStats.DataURLs++
		}
		if d.InformationURL != "" {
			stats.URLStats.InformationURLs++
		}
		if d.OverviewURL != "" {
			stats.URLStats.OverviewURLs++
		}
		if d.RequiresRegistration {
			stats.RequireRegistration++
		}
		if d.Description != "" {
			descLengths = append(descLengths, len([]rune(d.Description)))
		}
	}

	stats.Categories = len(stats.CategoryCounts)
	stats.DescriptionStats = summarizeLengths(descLengths)
	return stats
}

func summarizeLengths(lengths []int) DescriptionStats {
	if len(lengths) == 0 {
		return DescriptionStats{}
	}

	ds := DescriptionStats{
		WithDescription: len(lengths),
		MinLength:       lengths[0],
	}
	total := 0
	for _, n := range lengths {
		total += n
		if n > ds.MaxLength {
			ds.MaxLength = n
		}
		if n < ds.MinLength {
			ds.MinLength = n
		}
	}
	ds.AverageLength = float64(total) / float64(len(lengths))
	return ds
}
