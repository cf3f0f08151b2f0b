package feedforward

import "compress/lzw"
import "encoding/json"
import "io"
import "os"

import "github.com/google/uuid"
import "github.com/pkg/errors"

import "github.com/neurlang/climber/activation"
import "github.com/neurlang/climber/layer/connected"
import "github.com/neurlang/climber/layer/input"

type layerJson struct {
	Size       int       `json:"size"`
	Prev       int       `json:"prev"`
	Activation string    `json:"activation,omitempty"`
	Weights    []float32 `json:"weights"`
}

type networkJson struct {
	Run    string      `json:"run"`
	Input  int         `json:"input"`
	Layers []layerJson `json:"layers"`
}

// WriteCompressedWeightsToFile writes model weights to a lzw file
func (f *FeedforwardNetwork) WriteCompressedWeightsToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "create %q", name)
	}
	err = f.WriteCompressedWeights(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteCompressedWeights writes model weights to a writer
func (f *FeedforwardNetwork) WriteCompressedWeights(w io.Writer) error {
	if len(f.layers) == 0 {
		return ErrNoInput
	}
	if f.run == "" {
		f.run = uuid.NewString()
	}
	var doc = networkJson{
		Run:   f.run,
		Input: f.layers[0].Size(),
	}
	for _, l := range f.layers[1:] {
		c, ok := l.(*connected.Connected)
		if !ok {
			return errors.Wrapf(ErrShapeMismatch, "layer of type %T", l)
		}
		doc.Layers = append(doc.Layers, layerJson{
			Size:       c.Size(),
			Prev:       c.Prev(),
			Activation: activation.Name(c.Activation()),
			Weights:    c.Weights(),
		})
	}

	lw := lzw.NewWriter(w, lzw.LSB, 8)
	if err := json.NewEncoder(lw).Encode(doc); err != nil {
		lw.Close()
		return errors.Wrap(err, "encode weights")
	}
	return lw.Close()
}

// ReadCompressedWeightsFromFile reads model weights from a lzw file
func (f *FeedforwardNetwork) ReadCompressedWeightsFromFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return errors.Wrapf(err, "open %q", name)
	}
	defer file.Close()
	return f.ReadCompressedWeights(file)
}

// ReadCompressedWeights reads model weights from a reader into the already
// built network. The stored shape must match the network exactly. Nothing
// is overwritten unless every layer matches.
func (f *FeedforwardNetwork) ReadCompressedWeights(r io.Reader) error {
	doc, err := decodeWeights(r)
	if err != nil {
		return err
	}
	return f.load(doc)
}

// ReadCompressedNetworkFromFile builds a network from a lzw model file
func ReadCompressedNetworkFromFile(name string) (*FeedforwardNetwork, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open %q", name)
	}
	defer file.Close()
	return ReadCompressedNetwork(file)
}

// ReadCompressedNetwork builds the network described by a model stream: the
// input width, the layer sizes and activations, then the weights.
func ReadCompressedNetwork(r io.Reader) (*FeedforwardNetwork, error) {
	doc, err := decodeWeights(r)
	if err != nil {
		return nil, err
	}
	var f FeedforwardNetwork
	if err := f.NewInput(input.NewSeed(doc.Input)); err != nil {
		return nil, errors.Wrapf(ErrShapeMismatch, "input %d: %v", doc.Input, err)
	}
	for i, stored := range doc.Layers {
		if stored.Prev != i {
			return nil, errors.Wrapf(ErrShapeMismatch, "layer %d reads layer %d", i+1, stored.Prev)
		}
		act, err := activation.New(stored.Activation)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i+1)
		}
		if err := f.NewLayer(stored.Size, act); err != nil {
			return nil, errors.Wrapf(ErrShapeMismatch, "%v", err)
		}
	}
	if err := f.load(doc); err != nil {
		return nil, err
	}
	return &f, nil
}

func decodeWeights(r io.Reader) (doc networkJson, err error) {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()
	if err = json.NewDecoder(lr).Decode(&doc); err != nil {
		err = errors.Wrap(err, "decode weights")
	}
	return
}

func (f *FeedforwardNetwork) load(doc networkJson) error {
	if len(f.layers) == 0 {
		return ErrNoInput
	}
	if doc.Input != f.layers[0].Size() || len(doc.Layers) != len(f.layers)-1 {
		return errors.Wrapf(ErrShapeMismatch, "input %d with %d layers", doc.Input, len(doc.Layers))
	}
	for i, stored := range doc.Layers {
		c, ok := f.layers[i+1].(*connected.Connected)
		if !ok || c.Size() != stored.Size || c.Prev() != stored.Prev {
			return errors.Wrapf(ErrShapeMismatch, "layer %d", i+1)
		}
		if stored.Activation != "" && stored.Activation != activation.Name(c.Activation()) {
			return errors.Wrapf(ErrShapeMismatch, "layer %d activation %q", i+1, stored.Activation)
		}
		if len(stored.Weights) != c.Size()*c.PrevSize() {
			return errors.Wrapf(ErrShapeMismatch, "layer %d has %d weights, want %d", i+1, len(stored.Weights), c.Size()*c.PrevSize())
		}
	}
	for i, stored := range doc.Layers {
		if err := f.layers[i+1].(*connected.Connected).SetWeights(stored.Weights); err != nil {
			return errors.Wrapf(ErrShapeMismatch, "layer %d: %v", i+1, err)
		}
	}
	f.run = doc.Run
	return nil
}
