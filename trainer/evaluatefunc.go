package trainer

import "github.com/chewxy/math32"
import "github.com/pkg/errors"

import "github.com/neurlang/climber/datasets"
import "github.com/neurlang/climber/net/feedforward"

// Fitness runs every record of cursor through net and returns the absolute
// value of the mean loss. The cursor is rewound afterwards. An empty split
// scores 0.
func Fitness(net *feedforward.FeedforwardNetwork, cursor *datasets.Cursor, loss Loss) (float32, error) {
	defer cursor.Reset()
	var sum float32
	var n int
	for cursor.HasNext() {
		rec, _ := cursor.Next()
		out, err := net.Forward(rec.Data)
		if err != nil {
			return 0, errors.Wrapf(err, "record %d", n)
		}
		sum += loss(out, rec.Label)
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return math32.Abs(sum / float32(n)), nil
}

// Validate scores net on the validation split of d with the mean absolute
// loss. Both cursors of d are rewound.
func Validate(net *feedforward.FeedforwardNetwork, d *datasets.Dataset, loss Loss) (float32, error) {
	defer d.Reset()
	var sum float32
	var n int
	for d.HasValidation() {
		rec, _ := d.GetValidation()
		out, err := net.Forward(rec.Data)
		if err != nil {
			return 0, errors.Wrapf(err, "validation record %d", n)
		}
		sum += math32.Abs(loss(out, rec.Label))
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float32(n), nil
}
