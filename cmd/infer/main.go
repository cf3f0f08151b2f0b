package main

import "flag"
import "fmt"
import "os"

import "github.com/chewxy/math32"

import "github.com/neurlang/climber/datasets"
import "github.com/neurlang/climber/datasets/filesystem"
import "github.com/neurlang/climber/datasets/mnist"
import "github.com/neurlang/climber/inference"
import "github.com/neurlang/climber/net/feedforward"

func fatal(err error) {
	println(err.Error())
	os.Exit(1)
}

func main() {
	model := flag.String("model", "", "trained .json.lzw model")
	manifest := flag.String("manifest", "", "manifest .json or .csv listing the record files")
	mnistImages := flag.String("mnist-images", "", "mnist images idx file, used without -manifest")
	mnistLabels := flag.String("mnist-labels", "", "mnist labels idx file")
	datum := flag.String("datum", "matrix", "record type of manifest files: matrix or float32")
	quiet := flag.Bool("quiet", false, "print only the summary")
	flag.Parse()

	net, err := feedforward.ReadCompressedNetworkFromFile(*model)
	if err != nil {
		fatal(err)
	}

	var loader datasets.Loader
	if *manifest != "" {
		d, err := filesystem.DatumByName(*datum, net.Seed().Len())
		if err != nil {
			fatal(err)
		}
		l, err := filesystem.New(*manifest, d)
		if err != nil {
			fatal(err)
		}
		loader = l
	} else {
		img, lab := *mnistImages, *mnistLabels
		if img == "" {
			var err error
			if img, lab, err = mnist.Find(mnist.InferImages, mnist.InferLabels); err != nil {
				fatal(err)
			}
		}
		l, err := mnist.New(img, lab)
		if err != nil {
			fatal(err)
		}
		loader = l
	}

	predictions, err := inference.Predict(net, loader)
	if err != nil {
		fatal(err)
	}
	var errsum float32
	for i, p := range predictions {
		if !*quiet {
			fmt.Println(i, p.Output, p.Label)
		}
		errsum += math32.Abs(p.Output - p.Label)
	}
	if len(predictions) > 0 {
		fmt.Println("[infer] run", net.Run(), "mean absolute error", errsum/float32(len(predictions)), "over", len(predictions), "records")
	}
}
