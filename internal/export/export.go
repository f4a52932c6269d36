// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes dataset collections to JSON or YAML files.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/medcat/pkg/types"
)

// Document is the exported file layout: a manifest of categories and
// the total count, followed by the dataset entries themselves.
type Document struct {
	Categories    []string                `json:"categories" yaml:"categories"`
	TotalDatasets int                     `json:"total_datasets" yaml:"total_datasets"`
	Datasets      []types.ExportedDataset `json:"datasets" yaml:"datasets"`
}

// Build assembles the export document for a dataset collection. The
// manifest lists the distinct categories of the exported set in the
// order they first appear.
func Build(datasets []types.Dataset, includeRaw bool) Document {
	doc := Document{
		TotalDatasets: len(datasets),
		Categories:    []string{},
		Datasets:      make([]types.ExportedDataset, 0, len(datasets)),
	}

	seen := make(map[string]bool)
	for _, d := range datasets {
		if !seen[d.Category] {
			seen[d.Category] = true
			doc.Categories = append(doc.Categories, d.Category)
		}
		doc.Datasets = append(doc.Datasets, d.ExportView(includeRaw))
	}
	return doc
}

// JSON writes the collection to path as indented JSON. Non-ASCII text
// is written as-is, not escaped. The file is written to a temporary
// sibling and renamed into place so a failed write never leaves a
// partial export behind.
func JSON(datasets []types.Dataset, path string, indent int, includeRaw bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(Build(datasets, includeRaw)); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return writeAtomic(path, buf.Bytes())
}

// YAML writes the collection to path as YAML.
func YAML(datasets []types.Dataset, path string, includeRaw bool) error {
	data, err := yaml.Marshal(Build(datasets, includeRaw))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return writeAtomic(path, data)
}

// writeAtomic writes data to a temporary file beside path and renames
// it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary export file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing export file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing export file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming export file to %s: %w", path, err)
	}
	return nil
}
