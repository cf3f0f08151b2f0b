package trainer

import "encoding/csv"
import "fmt"
import "io"
import "log"
import "os"
import "path/filepath"
import "strconv"

import "github.com/google/uuid"
import "github.com/pkg/errors"

import "github.com/neurlang/climber/net/feedforward"

// Reporter receives every generation together with the new champion.
type Reporter interface {
	Report(g Generation, champion *feedforward.FeedforwardNetwork) error
}

// TextReporter writes one "<gen> : L=<loss>, R=<rate>, best=<greedy>" line
// per generation.
type TextReporter struct {
	l *log.Logger
}

// NewTextReporter writes to w. A nil w means standard output.
func NewTextReporter(w io.Writer) *TextReporter {
	if w == nil {
		w = os.Stdout
	}
	return &TextReporter{l: log.New(w, "", 0)}
}

// NewLoggerReporter writes through an existing logger, such as the one of
// learning.HyperParameters.
func NewLoggerReporter(l *log.Logger) *TextReporter {
	return &TextReporter{l: l}
}

func (r *TextReporter) Report(g Generation, _ *feedforward.FeedforwardNetwork) error {
	r.l.Printf("%d : L=%v, R=%v, best=%v", g.Generation, g.Loss, g.Rate, g.Greedy)
	return nil
}

// CSVReporter writes generation,loss,rate,greedy rows after a header.
type CSVReporter struct {
	w      *csv.Writer
	header bool
}

func NewCSVReporter(w io.Writer) *CSVReporter {
	return &CSVReporter{w: csv.NewWriter(w)}
}

func (r *CSVReporter) Report(g Generation, _ *feedforward.FeedforwardNetwork) error {
	if !r.header {
		r.w.Write([]string{"generation", "loss", "rate", "greedy"})
		r.header = true
	}
	r.w.Write([]string{
		strconv.Itoa(g.Generation),
		strconv.FormatFloat(float64(g.Loss), 'g', -1, 32),
		strconv.FormatFloat(float64(g.Rate), 'g', -1, 32),
		strconv.FormatBool(g.Greedy),
	})
	r.w.Flush()
	return r.w.Error()
}

// Checkpoint saves the champion to Path whenever its own score improves on
// the best one saved so far.
type Checkpoint struct {
	Path string
	best float32
	seen bool
}

func (c *Checkpoint) Report(g Generation, champion *feedforward.FeedforwardNetwork) error {
	if c.seen && g.ChampionLoss >= c.best {
		return nil
	}
	c.best, c.seen = g.ChampionLoss, true
	if err := champion.WriteCompressedWeightsToFile(c.Path); err != nil {
		return errors.Wrapf(err, "checkpoint generation %d", g.Generation)
	}
	return nil
}

// Best returns the lowest fitness saved so far.
func (c *Checkpoint) Best() (float32, bool) {
	return c.best, c.seen
}

// NextLogPath creates dir if needed and returns the first log_N.log in it
// that does not exist yet.
func NextLogPath(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "log directory %q", dir)
	}
	for n := 0; ; n++ {
		p := filepath.Join(dir, fmt.Sprintf("log_%d.log", n))
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return p, nil
		} else if err != nil {
			return "", errors.Wrapf(err, "log path %q", p)
		}
	}
}

// Header writes the run header line and returns the run id.
func Header(l *log.Logger, run string) string {
	if run == "" {
		run = uuid.NewString()
	}
	l.Printf("# run %s", run)
	return run
}
