package catalog

import (
	"reflect"
	"testing"

	"github.com/pdiddy/medcat/pkg/types"
)

const sampleDoc = `## 1. Imaging

__Alpha Set__

A chest scan corpus. Requires registration.

Paper: https://x.org/a

***

__Beta Set__

Access: https://y.org/b
`

func TestParseSampleDocument(t *testing.T) {
	datasets := Parse(sampleDoc)
	if len(datasets) != 2 {
		t.Fatalf("len(datasets) = %d, want 2", len(datasets))
	}

	alpha := datasets[0]
	if alpha.Name != "Alpha Set" {
		t.Errorf("name = %q, want %q", alpha.Name, "Alpha Set")
	}
	if alpha.Category != "Imaging" {
		t.Errorf("category = %q, want %q", alpha.Category, "Imaging")
	}
	if alpha.PaperURL != "https://x.org/a" {
		t.Errorf("paper URL = %q, want %q", alpha.PaperURL, "https://x.org/a")
	}
	if !alpha.RequiresRegistration {
		t.Error("alpha should require registration")
	}
	if alpha.Description != "A chest scan corpus. Requires registration." {
		t.Errorf("description = %q", alpha.Description)
	}

	beta := datasets[1]
	if beta.Name != "Beta Set" {
		t.Errorf("name = %q, want %q", beta.Name, "Beta Set")
	}
	if beta.Category != "Imaging" {
		t.Errorf("category = %q, want %q", beta.Category, "Imaging")
	}
	if beta.AccessURL != "https://y.org/b" {
		t.Errorf("access URL = %q, want %q", beta.AccessURL, "https://y.org/b")
	}
	if beta.RequiresRegistration {
		t.Error("beta should not require registration")
	}
	if beta.Description != "" {
		t.Errorf("description = %q, want empty", beta.Description)
	}
}

func TestParseIdempotent(t *testing.T) {
	first := Parse(sampleDoc)
	second := Parse(sampleDoc)
	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same document twice should yield identical results")
	}
}

func TestParseTitleClosesPreviousRecord(t *testing.T) {
	// No *** between the entries: the second bold title must close the
	// first record.
	doc := `## 1. Imaging

__First Set__

First description.

__Second Set__

Second description.
`
	datasets := Parse(doc)
	if len(datasets) != 2 {
		t.Fatalf("len(datasets) = %d, want 2", len(datasets))
	}
	if datasets[0].Description != "First description." {
		t.Errorf("first description = %q", datasets[0].Description)
	}
	if datasets[1].Description != "Second description." {
		t.Errorf("second description = %q", datasets[1].Description)
	}
}

func TestParseCategoryHeaderClosesRecord(t *testing.T) {
	doc := `## 1. Imaging

__Scan Set__

Scans.

## 2. Speech

__Audio Set__

Recordings.
`
	datasets := Parse(doc)
	if len(datasets) != 2 {
		t.Fatalf("len(datasets) = %d, want 2", len(datasets))
	}
	if datasets[0].Category != "Imaging" {
		t.Errorf("first category = %q, want Imaging", datasets[0].Category)
	}
	if datasets[1].Category != "Speech" {
		t.Errorf("second category = %q, want Speech", datasets[1].Category)
	}
}

func TestParseNameLengthBoundary(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  int
	}{
		{"two runes discarded", "__ab__", 0},
		{"three runes kept", "__abc__", 1},
		{"three multibyte runes kept", "__äöü__", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "## 1. Imaging\n\n" + tt.title + "\n\nSome text.\n"
			if got := len(Parse(doc)); got != tt.want {
				t.Errorf("len(Parse(doc)) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseRegistrationPhrases(t *testing.T) {
	phrases := []string{
		"Requires Registration to download.",
		"Registration required before access.",
		"Sign up required for the portal.",
		"Account required at the host site.",
	}
	for _, phrase := range phrases {
		t.Run(phrase, func(t *testing.T) {
			doc := "## 1. Imaging\n\n__Gated Set__\n\n" + phrase + "\n"
			datasets := Parse(doc)
			if len(datasets) != 1 {
				t.Fatalf("len(datasets) = %d, want 1", len(datasets))
			}
			if !datasets[0].RequiresRegistration {
				t.Errorf("phrase %q should set the registration flag", phrase)
			}
		})
	}

	t.Run("absent phrases leave flag unset", func(t *testing.T) {
		doc := "## 1. Imaging\n\n__Open Set__\n\nFreely available archive.\n"
		datasets := Parse(doc)
		if len(datasets) != 1 {
			t.Fatalf("len(datasets) = %d, want 1", len(datasets))
		}
		if datasets[0].RequiresRegistration {
			t.Error("registration flag should default to false")
		}
	})
}

func TestParseRegistrationLineStillContributesURL(t *testing.T) {
	doc := `## 1. Imaging

__Gated Set__

Access: https://z.org/gated (registration required)
`
	datasets := Parse(doc)
	if len(datasets) != 1 {
		t.Fatalf("len(datasets) = %d, want 1", len(datasets))
	}
	if !datasets[0].RequiresRegistration {
		t.Error("registration flag should be set")
	}
	if datasets[0].AccessURL != "https://z.org/gated" {
		t.Errorf("access URL = %q, want %q", datasets[0].AccessURL, "https://z.org/gated")
	}
}

func TestParseURLExtraction(t *testing.T) {
	tests := []struct {
		name string
		line string
		want func(types.Dataset) string
		url  string
	}{
		{"trailing paren excluded", "Paper: (see https://x.org/paper)", func(d types.Dataset) string { return d.PaperURL }, "https://x.org/paper"},
		{"first of multiple kept", "Data: https://a.org/1 or https://b.org/2", func(d types.Dataset) string { return d.DataURL }, "https://a.org/1"},
		{"case-insensitive label", "PAPER: https://x.org/p", func(d types.Dataset) string { return d.PaperURL }, "https://x.org/p"},
		{"http scheme accepted", "Access: http://plain.example.org/x", func(d types.Dataset) string { return d.AccessURL }, "http://plain.example.org/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "## 1. Imaging\n\n__URL Set__\n\n" + tt.line + "\n"
			datasets := Parse(doc)
			if len(datasets) != 1 {
				t.Fatalf("len(datasets) = %d, want 1", len(datasets))
			}
			if got := tt.want(datasets[0]); got != tt.url {
				t.Errorf("url = %q, want %q", got, tt.url)
			}
		})
	}
}

func TestParseLabelLineWithoutURLLeavesFieldEmpty(t *testing.T) {
	doc := "## 1. Imaging\n\n__Pending Set__\n\nPaper: coming soon\n"
	datasets := Parse(doc)
	if len(datasets) != 1 {
		t.Fatalf("len(datasets) = %d, want 1", len(datasets))
	}
	if datasets[0].PaperURL != "" {
		t.Errorf("paper URL = %q, want empty", datasets[0].PaperURL)
	}
}

func TestParseOverviewFallback(t *testing.T) {
	tests := []struct {
		name     string
		lines    string
		wantInfo string
		wantOver string
	}{
		{
			"overview fills empty information",
			"Overview: https://o.org/v\n",
			"https://o.org/v",
			"https://o.org/v",
		},
		{
			"information wins over later overview",
			"Information: https://i.org/v\nOverview: https://o.org/v\n",
			"https://i.org/v",
			"https://o.org/v",
		},
		{
			"earlier overview does not block information",
			"Overview: https://o.org/v\nInformation: https://i.org/v\n",
			"https://i.org/v",
			"https://o.org/v",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "## 1. Imaging\n\n__Info Set__\n\n" + tt.lines
			datasets := Parse(doc)
			if len(datasets) != 1 {
				t.Fatalf("len(datasets) = %d, want 1", len(datasets))
			}
			if datasets[0].InformationURL != tt.wantInfo {
				t.Errorf("information URL = %q, want %q", datasets[0].InformationURL, tt.wantInfo)
			}
			if datasets[0].OverviewURL != tt.wantOver {
				t.Errorf("overview URL = %q, want %q", datasets[0].OverviewURL, tt.wantOver)
			}
		})
	}
}

func TestParseBlankLinesDoNotSplitRecords(t *testing.T) {
	doc := `## 1. Imaging

__Spread Set__

First paragraph.


Second paragraph after blank lines.
`
	datasets := Parse(doc)
	if len(datasets) != 1 {
		t.Fatalf("len(datasets) = %d, want 1", len(datasets))
	}
	want := "First paragraph. Second paragraph after blank lines."
	if datasets[0].Description != want {
		t.Errorf("description = %q, want %q", datasets[0].Description, want)
	}
}

func TestParseTitleBeforeCategoryIgnored(t *testing.T) {
	doc := `__Orphan Set__

Orphan description.

## 1. Imaging

__Real Set__

Real description.
`
	datasets := Parse(doc)
	if len(datasets) != 1 {
		t.Fatalf("len(datasets) = %d, want 1", len(datasets))
	}
	if datasets[0].Name != "Real Set" {
		t.Errorf("name = %q, want %q", datasets[0].Name, "Real Set")
	}
}

func TestParseRawTextPreserved(t *testing.T) {
	datasets := Parse(sampleDoc)
	if len(datasets) != 2 {
		t.Fatalf("len(datasets) = %d, want 2", len(datasets))
	}
	want := "__Alpha Set__\nA chest scan corpus. Requires registration.\nPaper: https://x.org/a"
	if datasets[0].RawText != want {
		t.Errorf("raw text = %q, want %q", datasets[0].RawText, want)
	}
}

func TestParseEmptyAndMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"prose only", "just some text\nwith no structure\n"},
		{"category with no records", "## 1. Imaging\n\nIntro text only.\n"},
		{"separators only", "***\n***\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.doc); len(got) != 0 {
				t.Errorf("len(Parse(doc)) = %d, want 0", len(got))
			}
		})
	}
}

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold underscores", "a __bold__ word", "a bold word"},
		{"bold asterisks", "a **bold** word", "a bold word"},
		{"italic", "an *italic* word", "an italic word"},
		{"code", "a `code` span", "a code span"},
		{"link", "see [the site](https://x.org) here", "see the site here"},
		{"link with underscores", "see [docs](https://x.org/a_b_c)", "see docs"},
		{"plain text untouched", "no markdown here", "no markdown here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanMarkdown(tt.in); got != tt.want {
				t.Errorf("cleanMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
