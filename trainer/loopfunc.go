package trainer

import "context"
import "math/rand"

import "github.com/pkg/errors"

import "github.com/neurlang/climber/datasets"
import "github.com/neurlang/climber/layer/input"
import "github.com/neurlang/climber/learning"
import "github.com/neurlang/climber/net/feedforward"
import "github.com/neurlang/climber/parallel"

// ErrGenerationCap is returned by Loop when MaxGenerations is reached
// before the fitness threshold.
var ErrGenerationCap = errors.New("generation cap reached")

// ErrNoData is returned by NewTrainer without a dataset.
var ErrNoData = errors.New("trainer has no dataset")

// Generation is the outcome of one training generation.
type Generation struct {
	Generation   int
	Loss         float32 // score the selection compared, swapped on explore generations
	ChampionLoss float32 // the champion's own score
	Rate         float32 // learning rate after the schedule advanced
	Greedy       bool    // false when the scores were swapped before comparing
}

// Select compares the scores of candidate A (f1) and candidate B (f2). When
// swap is set the scores are exchanged first, so that A is taken exactly when
// it is the worse one. It reports whether A won and the score it was compared
// with.
func Select(f1, f2 float32, swap bool) (first bool, fitness float32, greedy bool) {
	if swap {
		f1, f2 = f2, f1
	}
	if f1 < f2 {
		return true, f1, !swap
	}
	return false, f2, !swap
}

// Trainer holds the champion network and the training state between generations.
type Trainer struct {
	h        *learning.HyperParameters
	data     *datasets.Dataset
	loss     Loss
	rng      *rand.Rand
	schedule learning.Schedule

	champion   *feedforward.FeedforwardNetwork
	fitness    float32
	generation int

	reporters []Reporter
}

// NewTrainer starts training from net. A nil loss means Difference, a nil
// rng is taken from h.
func NewTrainer(net *feedforward.FeedforwardNetwork, data *datasets.Dataset, h *learning.HyperParameters,
	loss Loss, rng *rand.Rand, reporters ...Reporter) (*Trainer, error) {
	if net == nil || net.Seed() == nil {
		return nil, feedforward.ErrNoInput
	}
	if net.Len() < 2 {
		return nil, feedforward.ErrNoOutput
	}
	if data == nil {
		return nil, ErrNoData
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if loss == nil {
		loss = Difference
	}
	if rng == nil {
		rng = h.Rand()
	}
	return &Trainer{
		h:         h,
		data:      data,
		loss:      loss,
		rng:       rng,
		schedule:  h.Schedule(),
		champion:  net,
		fitness:   initialFitness,
		reporters: reporters,
	}, nil
}

const initialFitness = 10000

// Champion returns the current best network.
func (t *Trainer) Champion() *feedforward.FeedforwardNetwork {
	return t.champion
}

// Fitness returns the champion fitness of the last generation.
func (t *Trainer) Fitness() float32 {
	return t.fitness
}

// Schedule returns the schedule the next generation mutates with.
func (t *Trainer) Schedule() learning.Schedule {
	return t.schedule
}

// Done reports whether the champion reached the fitness threshold.
func (t *Trainer) Done() bool {
	return t.fitness <= t.h.Threshold
}

// Step runs one generation.
func (t *Trainer) Step() (Generation, error) {
	a := feedforward.Mutate(t.champion, t.schedule, t.rng)
	b := feedforward.Mutate(t.champion, t.schedule, t.rng)
	t.schedule = t.schedule.Advance()

	f1, f2, err := t.evaluate(a, b)
	if err != nil {
		return Generation{}, err
	}

	first, fitness, greedy := Select(f1, f2, t.rng.Float32() < t.h.Explore)
	own := f2
	if first {
		t.champion, own = a, f1
	} else {
		t.champion = b
	}
	t.fitness = fitness

	g := Generation{
		Generation:   t.generation,
		Loss:         fitness,
		ChampionLoss: own,
		Rate:         t.schedule.Rate(),
		Greedy:       greedy,
	}
	t.generation++
	for _, r := range t.reporters {
		if err := r.Report(g, t.champion); err != nil {
			return g, errors.Wrap(err, "report")
		}
	}
	return g, nil
}

func (t *Trainer) evaluate(a, b *feedforward.FeedforwardNetwork) (f1, f2 float32, err error) {
	if t.h.Threads <= 1 {
		if f1, err = Fitness(a, t.data.TrainingCursor(), t.loss); err != nil {
			return
		}
		f2, err = Fitness(b, t.data.TrainingCursor(), t.loss)
		return
	}
	candidates := [2]*feedforward.FeedforwardNetwork{a, b}
	var scores [2]float32
	var errs [2]error
	for i, c := range candidates {
		if candidates[i], err = c.Rebind(input.NewSeed(c.Seed().Len())); err != nil {
			return
		}
	}
	parallel.ForEach(len(candidates), parallel.Workers(t.h.Threads), func(i int) {
		scores[i], errs[i] = Fitness(candidates[i], t.data.Training(), t.loss)
	})
	for _, err = range errs {
		if err != nil {
			return
		}
	}
	return scores[0], scores[1], nil
}

// Loop runs generations until the champion fitness is at or below the
// threshold, the generation cap is hit or ctx is done.
func (t *Trainer) Loop(ctx context.Context) (*feedforward.FeedforwardNetwork, error) {
	for !t.Done() {
		if err := ctx.Err(); err != nil {
			return t.champion, err
		}
		if t.h.MaxGenerations > 0 && t.generation >= t.h.MaxGenerations {
			return t.champion, errors.Wrapf(ErrGenerationCap, "after %d generations, fitness %v", t.generation, t.fitness)
		}
		if _, err := t.Step(); err != nil {
			return t.champion, err
		}
	}
	return t.champion, nil
}
