// Package mnist loads the MNIST idx files as classified records
package mnist

import "os"
import "path/filepath"

import "github.com/petar/GoMNIST"
import "github.com/pkg/errors"

import "github.com/neurlang/climber/datasets"

// ImgSize is the side of an MNIST digit.
const ImgSize = 28

const (
	TrainImages = "train-images-idx3-ubyte.gz"
	TrainLabels = "train-labels-idx1-ubyte.gz"
	InferImages = "t10k-images-idx3-ubyte.gz"
	InferLabels = "t10k-labels-idx1-ubyte.gz"
)

// SearchDirectories are tried by Find in order.
var SearchDirectories = []string{`/tmp/mnist/`, userHomeDir() + `/go/src/example.com/repo.git/climber/datasets/mnist/`}

func userHomeDir() string {
	dirname, err := os.UserHomeDir()
	if err != nil {
		return "~"
	}
	return dirname
}

// Find returns the first search directory holding both files.
func Find(images, labels string) (string, string, error) {
	for _, dir := range SearchDirectories {
		img, lab := filepath.Join(dir, images), filepath.Join(dir, labels)
		if _, err := os.Stat(img); err != nil {
			continue
		}
		if _, err := os.Stat(lab); err != nil {
			continue
		}
		return img, lab, nil
	}
	return "", "", errors.Errorf("mnist: %s and %s not found in %v", images, labels, SearchDirectories)
}

// Loader yields one record per digit: pixels scaled by 1/256 and the digit as label.
type Loader struct {
	set *GoMNIST.Set
	pos int
}

// New reads a pair of gzipped idx files.
func New(imagesPath, labelsPath string) (*Loader, error) {
	set, err := GoMNIST.ReadSet(imagesPath, labelsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "mnist: reading %s", imagesPath)
	}
	if len(set.Images) != len(set.Labels) {
		return nil, errors.Errorf("mnist: %d images but %d labels", len(set.Images), len(set.Labels))
	}
	return &Loader{set: set}, nil
}

// Len returns the number of digits in the set.
func (l *Loader) Len() int {
	return len(l.set.Images)
}

// Size returns the number of pixels in a digit.
func (l *Loader) Size() int {
	return l.set.NRow * l.set.NCol
}

func (l *Loader) HasNext() bool {
	return l.pos < len(l.set.Images)
}

func (l *Loader) Next() (datasets.Record, bool) {
	if l.pos >= len(l.set.Images) {
		return datasets.Record{}, false
	}
	img, label := l.set.Images[l.pos], l.set.Labels[l.pos]
	l.pos++
	data := make([]float32, len(img))
	for i, px := range img {
		data[i] = float32(px) / 256
	}
	return datasets.Record{Data: data, Label: float32(label)}, true
}
