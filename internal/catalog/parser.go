// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog parses a markdown dataset catalog into typed records
// and answers queries over the parsed collection.
package catalog

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/medcat/pkg/types"
)

// minNameRunes is the shortest title kept by the parser. Anything
// shorter is treated as stray formatting and dropped.
const minNameRunes = 3

var (
	categoryRe = regexp.MustCompile(`^##\s*\d+\.\s*(.+)$`)
	urlRe      = regexp.MustCompile(`https?://[^\s)]+`)

	linkRe   = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	boldRe   = regexp.MustCompile(`__(.+?)__`)
	strongRe = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
	emRe     = regexp.MustCompile(`_(.+?)_`)
	codeRe   = regexp.MustCompile("`(.+?)`")
)

// registrationPhrases are the substrings that mark an entry as gated.
// Matched case-insensitively against every line of the entry.
var registrationPhrases = []string{
	"requires registration",
	"registration required",
	"sign up required",
	"account required",
}

// Parse converts the raw catalog document into an ordered list of
// datasets. The document is processed one line at a time: a numbered
// section header (## N. Title) opens a category, a bold line opens a
// record, and `***` on its own line or the next title/header closes
// the pending record. Malformed fragments are dropped, never reported;
// the parse itself cannot fail.
func Parse(content string) []types.Dataset {
	var (
		datasets []types.Dataset
		category string
		pending  []string
		inRecord bool
	)

	finalize := func() {
		if len(pending) > 0 && category != "" {
			if d, ok := buildDataset(pending, category); ok {
				datasets = append(datasets, d)
			}
		}
		pending = nil
		inRecord = false
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := categoryRe.FindStringSubmatch(trimmed); m != nil {
			finalize()
			category = strings.TrimSpace(m[1])
			continue
		}

		if trimmed == "***" {
			finalize()
			continue
		}

		// A new bold title always closes the record before it, so a
		// missing *** separator never merges two entries.
		if isTitleLine(trimmed) && category != "" {
			finalize()
			pending = []string{line}
			inRecord = true
			continue
		}

		if inRecord && trimmed != "" {
			pending = append(pending, line)
		}
	}

	finalize()
	return datasets
}

// isTitleLine reports whether the trimmed line opens a record title.
// The catalog convention is double-underscore bold, with ** accepted
// as the equivalent markdown emphasis.
func isTitleLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "__") || strings.HasPrefix(trimmed, "**")
}

// buildDataset turns an accumulated line buffer and its category into a
// Dataset. Returns ok=false when the stripped title is too short to be
// a real entry.
func buildDataset(lines []string, category string) (types.Dataset, bool) {
	name := strings.TrimSpace(stripTitleDelimiters(strings.TrimSpace(lines[0])))
	if utf8.RuneCountInString(name) < minNameRunes {
		return types.Dataset{}, false
	}

	d := types.Dataset{
		Name:     name,
		Category: category,
		RawText:  strings.Join(lines, "\n"),
	}

	var descLines []string
	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)

		// Registration phrases flag the record without consuming the
		// line; it may still carry a URL or description text.
		for _, phrase := range registrationPhrases {
			if strings.Contains(lower, phrase) {
				d.RequiresRegistration = true
				break
			}
		}

		switch {
		case strings.HasPrefix(lower, "paper:"):
			assignURL(&d.PaperURL, line)
		case strings.HasPrefix(lower, "access:"):
			assignURL(&d.AccessURL, line)
		case strings.HasPrefix(lower, "data:"):
			assignURL(&d.DataURL, line)
		case strings.HasPrefix(lower, "information:"):
			assignURL(&d.InformationURL, line)
		case strings.HasPrefix(lower, "overview:"):
			assignURL(&d.OverviewURL, line)
			// Overview doubles as the information link, but an explicit
			// Information line keeps precedence regardless of order.
			if d.InformationURL == "" {
				d.InformationURL = d.OverviewURL
			}
		default:
			if clean := cleanMarkdown(line); clean != "" {
				descLines = append(descLines, clean)
			}
		}
	}

	d.Description = strings.Join(descLines, " ")
	return d, true
}

// assignURL stores the first URL-shaped substring of line into dst.
// A label line without a URL leaves the field untouched.
func assignURL(dst *string, line string) {
	if url := urlRe.FindString(line); url != "" {
		*dst = url
	}
}

// stripTitleDelimiters removes the bold markers around a title line.
func stripTitleDelimiters(title string) string {
	title = boldRe.ReplaceAllString(title, "$1")
	title = strongRe.ReplaceAllString(title, "$1")
	return title
}

// cleanMarkdown strips link syntax and emphasis markers from a prose
// line. Links go first so URLs containing underscores survive intact
// as plain text.
func cleanMarkdown(line string) string {
	line = linkRe.ReplaceAllString(line, "$1")
	line = boldRe.ReplaceAllString(line, "$1")
	line = strongRe.ReplaceAllString(line, "$1")
	line = italicRe.ReplaceAllString(line, "$1")
	line = emRe.ReplaceAllString(line, "$1")
	line = codeRe.ReplaceAllString(line, "$1")
	return strings.TrimSpace(line)
}
