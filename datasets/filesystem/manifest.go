// Package filesystem loads classified records listed in a manifest file
package filesystem

import "encoding/csv"
import "encoding/json"
import "io"
import "os"
import "path/filepath"
import "strconv"
import "strings"

import "github.com/pkg/errors"

// DataItem is one manifest entry. Path is relative to the manifest directory.
type DataItem struct {
	Path           string  `json:"path"`
	Classification float32 `json:"classification"`
}

// Manifest lists the record files of a dataset.
type Manifest struct {
	Items []DataItem `json:"items"`
}

// ReadManifest reads a .json or .csv manifest.
func ReadManifest(path string) (m Manifest, err error) {
	if err = CheckFile(path); err != nil {
		return
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".csv" {
		return m, &FormatError{Format: strings.TrimPrefix(ext, ".")}
	}
	f, err := os.Open(path)
	if err != nil {
		return m, errors.Wrapf(ErrNotReadable, "%q: %v", path, err)
	}
	defer f.Close()
	if ext == ".json" {
		return ParseJSON(f)
	}
	return ParseCSV(f)
}

// ParseJSON decodes {"items": [{"path": ..., "classification": ...}]}.
// Other fields are ignored.
func ParseJSON(r io.Reader) (m Manifest, err error) {
	if err = json.NewDecoder(r).Decode(&m); err != nil {
		return m, &FormatError{Format: "json", Err: err}
	}
	for i, item := range m.Items {
		if item.Path == "" {
			return m, &FormatError{Format: "json", Err: errors.Errorf("item %d has no path", i)}
		}
	}
	return m, nil
}

// ParseCSV decodes path,classification rows. A first row whose second column
// is not a number is taken as a header.
func ParseCSV(r io.Reader) (m Manifest, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return m, &FormatError{Format: "csv", Err: err}
	}
	for i, row := range rows {
		class, err := strconv.ParseFloat(row[1], 32)
		if err != nil {
			if i == 0 {
				continue
			}
			return m, &FormatError{Format: "csv", Err: errors.Wrapf(err, "row %d", i+1)}
		}
		if row[0] == "" {
			return m, &FormatError{Format: "csv", Err: errors.Errorf("row %d has no path", i+1)}
		}
		m.Items = append(m.Items, DataItem{Path: row[0], Classification: float32(class)})
	}
	return m, nil
}
