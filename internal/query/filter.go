// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query provides criteria filtering and summary statistics over
// parsed dataset collections. All operations are pure.
package query

import (
	"strings"

	"github.com/pdiddy/medcat/pkg/types"
)

// Field names a Dataset attribute a criterion can test.
type Field string

const (
	FieldName                 Field = "name"
	FieldCategory             Field = "category"
	FieldDescription          Field = "description"
	FieldPaperURL             Field = "paper_url"
	FieldAccessURL            Field = "access_url"
	FieldDataURL              Field = "data_url"
	FieldInformationURL       Field = "information_url"
	FieldOverviewURL          Field = "overview_url"
	FieldRequiresRegistration Field = "requires_registration"
)

type criterionKind int

const (
	kindEquals criterionKind = iota
	kindContains
	kindPredicate
)

// Criterion is one filter condition over a single dataset field. Build
// one with Equals, Contains, or Where. A criterion naming a field the
// model does not have matches nothing.
type Criterion struct {
	kind      criterionKind
	field     Field
	value     any
	substring string
	pred      func(any) bool
}

// Equals matches when the field equals value. Strings compare
// case-insensitively; other values compare by equality.
func Equals(field Field, value any) Criterion {
	return Criterion{kind: kindEquals, field: field, value: value}
}

// Contains matches when the field's string value contains substring,
// case-insensitively.
func Contains(field Field, substring string) Criterion {
	return Criterion{kind: kindContains, field: field, substring: substring}
}

// Where matches when pred returns true for the field's current value.
func Where(field Field, pred func(any) bool) Criterion {
	return Criterion{kind: kindPredicate, field: field, pred: pred}
}

// Matches evaluates the criterion against one dataset.
func (c Criterion) Matches(d types.Dataset) bool {
	value, ok := fieldValue(d, c.field)
	if !ok {
		return false
	}

	switch c.kind {
	case kindEquals:
		if ev, ok := c.value.(string); ok {
			if av, ok := value.(string); ok {
				return strings.EqualFold(av, ev)
			}
			return false
		}
		return value == c.value
	case kindContains:
		av, ok := value.(string)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(av), strings.ToLower(c.substring))
	case kindPredicate:
		return c.pred != nil && c.pred(value)
	}
	return false
}

// Filter returns the datasets matching the criteria, preserving input
// order. With matchAll every criterion must hold (AND); otherwise one
// suffices (OR). An empty criteria list returns the input unchanged.
func Filter(datasets []types.Dataset, criteria []Criterion, matchAll bool) []types.Dataset {
	if len(criteria) == 0 {
		return datasets
	}

	var filtered []types.Dataset
	for _, d := range datasets {
		if matches(d, criteria, matchAll) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func matches(d types.Dataset, criteria []Criterion, matchAll bool) bool {
	for _, c := range criteria {
		ok := c.Matches(d)
		if matchAll && !ok {
			return false
		}
		if !matchAll && ok {
			return true
		}
	}
	return matchAll
}

// fieldValue extracts the named field from a dataset. The second return
// value is false for unknown field names.
func fieldValue(d types.Dataset, f Field) (any, bool) {
	switch f {
	case FieldName:
		return d.Name, true
	case FieldCategory:
		return d.Category, true
	case FieldDescription:
		return d.Description, true
	case FieldPaperURL:
		return d.PaperURL, true
	case FieldAccessURL:
		return d.AccessURL, true
	case FieldDataURL:
		return d.DataURL, true
	case FieldInformationURL:
		return d.InformationURL, true
	case FieldOverviewURL:
		return d.OverviewURL, true
	case FieldRequiresRegistration:
		return d.RequiresRegistration, true
	}
	return nil, false
}
