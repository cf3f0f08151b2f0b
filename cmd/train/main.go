package main

import "context"
import "flag"
import "fmt"
import "os"
import "os/signal"
import "strconv"
import "strings"
import "syscall"

import "github.com/pkg/errors"

import "github.com/neurlang/climber/activation"
import "github.com/neurlang/climber/datasets"
import "github.com/neurlang/climber/datasets/filesystem"
import "github.com/neurlang/climber/datasets/isalnum"
import "github.com/neurlang/climber/datasets/mnist"
import "github.com/neurlang/climber/datasets/squareroot"
import "github.com/neurlang/climber/learning"
import "github.com/neurlang/climber/net/feedforward"
import "github.com/neurlang/climber/parallel"
import "github.com/neurlang/climber/trainer"

func main() {
	if err := run(os.Args[1:]); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

// run trains with the command line args. Deferred cleanup runs on every return.
func run(args []string) error {
	h := learning.Defaults()
	fs := flag.NewFlagSet("train", flag.ContinueOnError)

	manifest := fs.String("manifest", "", "manifest .json or .csv listing the record files")
	synthetic := fs.String("synthetic", "", "built in dataset: squareroot or isalnum")
	mnistImages := fs.String("mnist-images", "", "mnist images idx file, used without -manifest")
	mnistLabels := fs.String("mnist-labels", "", "mnist labels idx file")
	datum := fs.String("datum", "matrix", "record type of manifest files: matrix or float32")
	width := fs.Int("width", 1024, "values per record")
	hidden := fs.String("hidden", "128", "comma separated hidden layer sizes")
	hiddenAct := fs.String("hidden-activation", "linear", "hidden layer activation")
	outputAct := fs.String("output-activation", "identity", "output layer activation")
	fs.Func("rate", "initial learning rate", float32Flag(&h.Rate))
	fs.Func("decay", "learning rate decay per generation", float32Flag(&h.Decay))
	fs.Func("threshold", "stop at or below this fitness", float32Flag(&h.Threshold))
	fs.Func("explore", "probability of swapping the candidate scores", float32Flag(&h.Explore))
	fs.Func("share", "validation share", float32Flag(&h.ValidationShare))
	fs.IntVar(&h.MaxGenerations, "max-generations", 0, "generation cap, 0 is unbounded")
	fs.Int64Var(&h.Seed, "seed", 0, "prng seed, 0 is random")
	fs.IntVar(&h.Threads, "threads", 1, "candidate evaluation workers")
	logdir := fs.String("logdir", "logs", "directory of the run logs")
	csvlog := fs.String("csv", "", "optional csv generation log")
	dstmodel := fs.String("dstmodel", "", "model destination .json.lzw file")
	resume := fs.Bool("resume", false, "resume training from -dstmodel")
	lossName := fs.String("loss", "difference", "loss: difference, absolute or squared")
	pgo := fs.Bool("pgo", false, "write a cpu profile to default.pgo")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *pgo {
		defer profile("default.pgo")()
	}
	if err := h.Validate(); err != nil {
		return err
	}
	loss, ok := trainer.LossByName(*lossName)
	if !ok {
		return errors.Errorf("unknown loss %q", *lossName)
	}
	hiddenSizes, err := sizes(*hidden)
	if err != nil {
		return err
	}
	hAct, err := activation.New(*hiddenAct)
	if err != nil {
		return err
	}
	oAct, err := activation.New(*outputAct)
	if err != nil {
		return err
	}

	rng := h.Rand()
	fmt.Println("cpu:", parallel.Banner())

	var loader datasets.Loader
	switch {
	case *manifest != "":
		d, err := filesystem.DatumByName(*datum, *width)
		if err != nil {
			return err
		}
		l, err := filesystem.New(*manifest, d)
		if err != nil {
			return err
		}
		defer func() {
			if l.Skipped() > 0 {
				fmt.Println("skipped", l.Skipped(), "of", l.Len(), "entries, last error:", l.Err())
			}
		}()
		loader = l
	case *synthetic == "squareroot":
		*width = 1
		loader = squareroot.Medium()
	case *synthetic == "isalnum":
		*width = isalnum.Bits
		loader = isalnum.Slice()
	case *synthetic != "":
		return errors.Errorf("unknown synthetic dataset %q", *synthetic)
	case *mnistImages != "":
		l, err := mnist.New(*mnistImages, *mnistLabels)
		if err != nil {
			return err
		}
		*width = l.Size()
		loader = l
	default:
		img, lab, err := mnist.Find(mnist.TrainImages, mnist.TrainLabels)
		if err != nil {
			return errors.Wrap(err, "no -manifest given")
		}
		l, err := mnist.New(img, lab)
		if err != nil {
			return err
		}
		*width = l.Size()
		loader = l
	}
	data := datasets.New(loader, h.ValidationShare, rng)
	fmt.Println("records:", data.TrainingLen(), "training,", data.ValidationLen(), "validation")

	net, err := feedforward.New(*width, hiddenSizes, hAct, oAct)
	if err != nil {
		return err
	}
	if err := trainer.Resume(net, resume, dstmodel); err != nil {
		return err
	}

	logpath, err := trainer.NextLogPath(*logdir)
	if err != nil {
		return err
	}
	if err := h.SetLogger(logpath); err != nil {
		return err
	}
	defer h.Close()
	net.SetRun(trainer.Header(h.Logger(), net.Run()))
	fmt.Println("run", net.Run(), "logging to", logpath)

	reporters := []trainer.Reporter{trainer.NewLoggerReporter(h.Logger()), trainer.NewTextReporter(nil)}
	if *csvlog != "" {
		f, err := os.Create(*csvlog)
		if err != nil {
			return err
		}
		defer f.Close()
		reporters = append(reporters, trainer.NewCSVReporter(f))
	}
	if *dstmodel != "" {
		reporters = append(reporters, &trainer.Checkpoint{Path: *dstmodel})
	}

	t, err := trainer.NewTrainer(net, data, &h, loss, rng, reporters...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	champion, err := t.Loop(ctx)
	switch errors.Cause(err) {
	case nil:
		fmt.Println("threshold reached, fitness", t.Fitness())
	case trainer.ErrGenerationCap, context.Canceled:
		fmt.Println("stopped:", err)
	default:
		return err
	}

	if data.ValidationLen() > 0 {
		v, err := trainer.Validate(champion, data, loss)
		if err != nil {
			return err
		}
		fmt.Println("validation loss", v)
		h.Logger().Printf("# validation L=%v", v)
	}
	return nil
}

func float32Flag(dst *float32) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return err
		}
		*dst = float32(v)
		return nil
	}
}

func sizes(s string) (o []int, err error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, errors.Errorf("bad layer size %q", part)
		}
		o = append(o, n)
	}
	return o, nil
}
