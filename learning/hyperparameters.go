package learning

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"log"
	"math/rand"
	"os"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// ErrHyperParameter is returned by Validate for values outside their domain.
var ErrHyperParameter = errors.New("invalid hyper parameter")

// SetLogger directs the training log to filename, appending.
func (h *HyperParameters) SetLogger(filename string) error {
	outfile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return errors.Wrapf(err, "open log %q", filename)
	}
	h.l = log.New(outfile, "", 0)
	h.closer = outfile
	return nil
}

// Logger returns the logger set by SetLogger, or nil.
func (h *HyperParameters) Logger() *log.Logger {
	return h.l
}

// Close closes the log file opened by SetLogger.
func (h *HyperParameters) Close() error {
	if h.closer == nil {
		return nil
	}
	err := h.closer.Close()
	h.closer = nil
	h.l = nil
	return err
}

type HyperParameters struct {
	Rate  float32 // initial learning rate (mutation magnitude)
	Decay float32 // learning rate multiplier applied each generation

	Threshold float32 // stop once the champion fitness is at or below this
	Explore   float32 // probability of swapping the candidate scores

	MaxGenerations int // 0 means unbounded

	ValidationShare float32 // probability of a record landing in validation

	Seed    int64 // prng seed, 0 seeds from crypto/rand
	Threads int   // candidate evaluation workers, <= 1 is sequential

	l      *log.Logger
	closer *os.File
}

// Defaults returns the reference hyper parameters.
func Defaults() HyperParameters {
	return HyperParameters{
		Rate:            1.0,
		Decay:           0.98,
		Threshold:       0.001,
		Explore:         0.10,
		ValidationShare: 0.5,
		Threads:         1,
	}
}

// Schedule returns the learning rate schedule described by h.
func (h *HyperParameters) Schedule() Schedule {
	return New(h.Rate, h.Decay)
}

// Rand returns the prng described by h.
func (h *HyperParameters) Rand() *rand.Rand {
	seed := h.Seed
	if seed == 0 {
		var b [8]byte
		if _, err := crypto_rand.Read(b[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(b[:]))
		} else {
			seed = 1
		}
	}
	return rand.New(rand.NewSource(seed))
}

// Validate rejects hyper parameters the trainer cannot run with.
func (h *HyperParameters) Validate() error {
	for name, v := range map[string]float32{
		"rate":      h.Rate,
		"decay":     h.Decay,
		"threshold": h.Threshold,
		"explore":   h.Explore,
		"share":     h.ValidationShare,
	} {
		if math32.IsNaN(v) || v < 0 {
			return errors.Wrapf(ErrHyperParameter, "%s = %v", name, v)
		}
	}
	if h.Explore > 1 {
		return errors.Wrapf(ErrHyperParameter, "explore = %v", h.Explore)
	}
	if h.ValidationShare > 1 {
		return errors.Wrapf(ErrHyperParameter, "share = %v", h.ValidationShare)
	}
	if h.MaxGenerations < 0 {
		return errors.Wrapf(ErrHyperParameter, "max generations = %d", h.MaxGenerations)
	}
	return nil
}
