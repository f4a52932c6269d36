// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the medcat catalog browser.
package types

// Dataset is one cataloged dataset entry extracted from the source
// markdown document. URL fields hold an empty string when the source
// carried no matching metadata line.
type Dataset struct {
	// Name is the dataset title with markdown delimiters stripped.
	Name string `json:"name" yaml:"name"`

	// Category is the title of the numbered section the entry appeared under.
	Category string `json:"category" yaml:"category"`

	// Description is the entry's prose with markdown formatting removed
	// and lines joined by single spaces. May be empty.
	Description string `json:"description" yaml:"description"`

	// PaperURL links the associated publication.
	PaperURL string `json:"paper_url" yaml:"paper_url"`

	// AccessURL links the access or request page.
	AccessURL string `json:"access_url" yaml:"access_url"`

	// DataURL links a direct download.
	DataURL string `json:"data_url" yaml:"data_url"`

	// InformationURL links general information. An Overview line fills
	// this field only when no Information line already has.
	InformationURL string `json:"information_url" yaml:"information_url"`

	// OverviewURL links a dataset overview page.
	OverviewURL string `json:"overview_url" yaml:"overview_url"`

	// RequiresRegistration is set when any source line contains a
	// registration-indicating phrase.
	RequiresRegistration bool `json:"requires_registration" yaml:"requires_registration"`

	// RawText preserves the original accumulated lines for diagnostics.
	// Excluded from export views unless explicitly requested.
	RawText string `json:"-" yaml:"-"`
}

// HasPaper reports whether the entry links a publication.
func (d Dataset) HasPaper() bool {
	return d.PaperURL != ""
}

// HasAccess reports whether any access-type URL is present.
func (d Dataset) HasAccess() bool {
	return d.AccessURL != "" || d.DataURL != "" || d.InformationURL != "" || d.OverviewURL != ""
}

// ExportedDataset is the serialization view of a Dataset. Field order is
// stable across JSON and YAML output; RawText appears only when the
// caller asked for it.
type ExportedDataset struct {
	Name                 string `json:"name" yaml:"name"`
	Category             string `json:"category" yaml:"category"`
	Description          string `json:"description" yaml:"description"`
	PaperURL             string `json:"paper_url" yaml:"paper_url"`
	AccessURL            string `json:"access_url" yaml:"access_url"`
	DataURL              string `json:"data_url" yaml:"data_url"`
	InformationURL       string `json:"information_url" yaml:"information_url"`
	OverviewURL          string `json:"overview_url" yaml:"overview_url"`
	RequiresRegistration bool   `json:"requires_registration" yaml:"requires_registration"`
	RawText              string `json:"raw_text,omitempty" yaml:"raw_text,omitempty"`
}

// ExportView returns the serialization view of the dataset.
func (d Dataset) ExportView(includeRaw bool) ExportedDataset {
	v := ExportedDataset{
		Name:                 d.Name,
		Category:             d.Category,
		Description:          d.Description,
		PaperURL:             d.PaperURL,
		AccessURL:            d.AccessURL,
		DataURL:              d.DataURL,
		InformationURL:       d.InformationURL,
		OverviewURL:          d.OverviewURL,
		RequiresRegistration: d.RequiresRegistration,
	}
	if includeRaw {
		v.RawText = d.RawText
	}
	return v
}

// CategoryCount pairs a category name with the number of datasets in it.
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}
