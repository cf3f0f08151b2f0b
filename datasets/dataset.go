// Package datasets implements the record dataset with its training and validation splits
package datasets

import "math/rand"

// Record is one classified input vector. It is not modified after creation.
type Record struct {
	Data  []float32
	Label float32
}

// Loader produces records one at a time. Next reports false when the
// current entry could not be turned into a record; the loader still moves on
// to the following entry.
type Loader interface {
	HasNext() bool
	Next() (Record, bool)
}

// Dataset holds the decoded records and their split into a training and a
// validation subset. Split membership is fixed at construction, only the
// two read cursors change afterwards.
type Dataset struct {
	data       []Record
	training   Cursor
	validation Cursor
}

// New drains loader. Every record is assigned to the validation split with
// probability share and to the training split otherwise, independently of
// the other records.
func New(loader Loader, share float32, rng *rand.Rand) *Dataset {
	d := new(Dataset)
	for loader.HasNext() {
		rec, ok := loader.Next()
		if !ok {
			continue
		}
		i := len(d.data)
		d.data = append(d.data, rec)
		if rng.Float32() < share {
			d.validation.index = append(d.validation.index, i)
		} else {
			d.training.index = append(d.training.index, i)
		}
	}
	d.training.data = d.data
	d.validation.data = d.data
	return d
}

// Len returns the number of records in both splits.
func (d *Dataset) Len() int {
	return len(d.data)
}

// TrainingLen returns the size of the training split.
func (d *Dataset) TrainingLen() int {
	return d.training.Len()
}

// ValidationLen returns the size of the validation split.
func (d *Dataset) ValidationLen() int {
	return d.validation.Len()
}

// GetTraining returns the next unread training record.
func (d *Dataset) GetTraining() (Record, bool) {
	return d.training.Next()
}

// GetValidation returns the next unread validation record.
func (d *Dataset) GetValidation() (Record, bool) {
	return d.validation.Next()
}

// HasTraining reports whether the training cursor has unread records.
func (d *Dataset) HasTraining() bool {
	return d.training.HasNext()
}

// HasValidation reports whether the validation cursor has unread records.
func (d *Dataset) HasValidation() bool {
	return d.validation.HasNext()
}

// Reset rewinds both cursors.
func (d *Dataset) Reset() {
	d.training.Reset()
	d.validation.Reset()
}

// TrainingCursor returns the dataset's own training cursor.
func (d *Dataset) TrainingCursor() *Cursor {
	return &d.training
}

// ValidationCursor returns the dataset's own validation cursor.
func (d *Dataset) ValidationCursor() *Cursor {
	return &d.validation
}

// Training returns a new cursor over the training split, independent of the
// dataset's own cursor.
func (d *Dataset) Training() *Cursor {
	return &Cursor{data: d.data, index: d.training.index}
}

// Validation returns a new cursor over the validation split.
func (d *Dataset) Validation() *Cursor {
	return &Cursor{data: d.data, index: d.validation.index}
}
