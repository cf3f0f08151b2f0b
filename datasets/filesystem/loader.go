package filesystem

import "os"
import "path/filepath"

import "github.com/pkg/errors"

import "github.com/neurlang/climber/datasets"
import "github.com/neurlang/climber/datasets/reader"

// Loader walks the entries of a manifest, producing one record per entry.
type Loader struct {
	dir     string
	items   []DataItem
	datum   Datum
	pos     int
	skipped int
	err     error
}

// New reads the manifest at path. Entries are resolved relative to its directory.
func New(path string, datum Datum) (*Loader, error) {
	if datum == nil {
		return nil, errors.New("filesystem: nil datum")
	}
	m, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(ErrPathNotFound, "%q: %v", path, err)
	}
	return &Loader{
		dir:   filepath.Dir(abs),
		items: m.Items,
		datum: datum,
	}, nil
}

// Len returns the number of manifest entries.
func (l *Loader) Len() int {
	return len(l.items)
}

func (l *Loader) HasNext() bool {
	return l.pos < len(l.items)
}

// Next loads the current entry and advances. Any failure yields false.
func (l *Loader) Next() (datasets.Record, bool) {
	if l.pos >= len(l.items) {
		return datasets.Record{}, false
	}
	item := l.items[l.pos]
	l.pos++
	data, err := l.load(item)
	if err != nil {
		l.skipped++
		l.err = errors.Wrapf(err, "entry %d", l.pos-1)
		return datasets.Record{}, false
	}
	return datasets.Record{Data: data, Label: item.Classification}, true
}

func (l *Loader) load(item DataItem) ([]float32, error) {
	path := item.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.dir, path)
	}
	if err := CheckFile(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrNotReadable, "%q: %v", path, err)
	}
	defer f.Close()
	r, err := reader.Open(reader.Detect(path), f)
	if err != nil {
		return nil, errors.Wrapf(err, "%q", path)
	}
	return l.datum.From(r)
}

// Err returns the most recent per-entry failure.
func (l *Loader) Err() error {
	return l.err
}

// Skipped returns how many entries produced no record.
func (l *Loader) Skipped() int {
	return l.skipped
}
