package query

import (
	"strings"
	"testing"

	"github.com/pdiddy/medcat/pkg/types"
)

func fixtureDatasets() []types.Dataset {
	return []types.Dataset{
		{
			Name:        "Alpha Set",
			Category:    "Imaging",
			Description: "Chest scans from three hospitals.",
			PaperURL:    "https://x.org/a",
		},
		{
			Name:                 "Beta Set",
			Category:             "Imaging",
			Description:          "Brain MRI volumes.",
			AccessURL:            "https://y.org/b",
			RequiresRegistration: true,
		},
		{
			Name:     "Gamma Recordings",
			Category: "Speech",
			DataURL:  "https://z.org/c",
		},
	}
}

func names(datasets []types.Dataset) []string {
	var out []string
	for _, d := range datasets {
		out = append(out, d.Name)
	}
	return out
}

func TestFilterEquals(t *testing.T) {
	tests := []struct {
		name     string
		criteria []Criterion
		want     []string
	}{
		{
			"category equals",
			[]Criterion{Equals(FieldCategory, "Imaging")},
			[]string{"Alpha Set", "Beta Set"},
		},
		{
			"string equality is case-insensitive",
			[]Criterion{Equals(FieldCategory, "imaging")},
			[]string{"Alpha Set", "Beta Set"},
		},
		{
			"bool equality",
			[]Criterion{Equals(FieldRequiresRegistration, true)},
			[]string{"Beta Set"},
		},
		{
			"no match",
			[]Criterion{Equals(FieldCategory, "Genomics")},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(fixtureDatasets(), tt.criteria, true))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("result[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterContains(t *testing.T) {
	got := names(Filter(fixtureDatasets(),
		[]Criterion{Contains(FieldDescription, "mri")}, true))
	if len(got) != 1 || got[0] != "Beta Set" {
		t.Errorf("got %v, want [Beta Set]", got)
	}
}

func TestFilterPredicate(t *testing.T) {
	hasURL := Where(FieldPaperURL, func(v any) bool {
		s, ok := v.(string)
		return ok && strings.HasPrefix(s, "https://")
	})
	got := names(Filter(fixtureDatasets(), []Criterion{hasURL}, true))
	if len(got) != 1 || got[0] != "Alpha Set" {
		t.Errorf("got %v, want [Alpha Set]", got)
	}
}

func TestFilterMatchAllVersusAny(t *testing.T) {
	criteria := []Criterion{
		Equals(FieldCategory, "Imaging"),
		Equals(FieldRequiresRegistration, true),
	}

	all := names(Filter(fixtureDatasets(), criteria, true))
	if len(all) != 1 || all[0] != "Beta Set" {
		t.Errorf("AND got %v, want [Beta Set]", all)
	}

	anyOf := names(Filter(fixtureDatasets(), criteria, false))
	if len(anyOf) != 2 {
		t.Errorf("OR got %v, want both Imaging datasets", anyOf)
	}
}

func TestFilterUnknownFieldNeverMatches(t *testing.T) {
	got := Filter(fixtureDatasets(), []Criterion{Equals(Field("license"), "MIT")}, true)
	if len(got) != 0 {
		t.Errorf("unknown field matched %d datasets, want 0", len(got))
	}
}

func TestFilterEmptyCriteriaReturnsInput(t *testing.T) {
	datasets := fixtureDatasets()
	got := Filter(datasets, nil, true)
	if len(got) != len(datasets) {
		t.Errorf("len = %d, want %d", len(got), len(datasets))
	}
}
