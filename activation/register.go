package activation

import "sort"
import "sync"

import "github.com/pkg/errors"

// Error is a sentinel error of the activation package.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

var (
	ErrUnknownActivation = Error{"unknown activation"}
	ErrDuplicateName     = Error{"activation name already registered"}
	ErrNilConstructor    = Error{"activation constructor is nil"}
)

var registry = struct {
	sync.RWMutex
	m map[string]func() Activation
}{m: make(map[string]func() Activation)}

func init() {
	list := map[string]func() Activation{
		"identity": func() Activation { return Identity{} },
		"linear":   func() Activation { return Linear() },
		"tanh":     func() Activation { return Tanh{} },
		"sigmoid":  func() Activation { return Sigmoid{} },
		"relu":     func() Activation { return ReLU{} },
	}
	for name, f := range list {
		if err := Register(name, f); err != nil {
			panic(err.Error())
		}
	}
}

// Register makes an activation constructor available under name.
func Register(name string, f func() Activation) error {
	if f == nil {
		return errors.Wrapf(ErrNilConstructor, "register %q", name)
	}
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.m[name]; ok {
		return errors.Wrapf(ErrDuplicateName, "register %q", name)
	}
	registry.m[name] = f
	return nil
}

// New constructs the activation registered under name.
func New(name string) (Activation, error) {
	registry.RLock()
	f, ok := registry.m[name]
	registry.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownActivation, "%q", name)
	}
	return f(), nil
}

// Name reports the registered name of a, or "" when a is not a built-in.
func Name(a Activation) string {
	switch v := a.(type) {
	case Identity:
		return "identity"
	case Clipped:
		if v.Limit == DefaultLimit {
			return "linear"
		}
	case Tanh:
		return "tanh"
	case Sigmoid:
		return "sigmoid"
	case ReLU:
		return "relu"
	}
	return ""
}

// Names lists the registered activation names in sorted order.
func Names() (o []string) {
	registry.RLock()
	for name := range registry.m {
		o = append(o, name)
	}
	registry.RUnlock()
	sort.Strings(o)
	return
}
