package lab

import (
	"context"
	"io"
	"sort"

	"github.com/cockroachdb/errors"
)

// Variant tells whether a demo reproduces a pitfall or shows the
// corrected pattern.
type Variant string

const (
	// Buggy demos misbehave on purpose: lost updates, panics, leaks.
	Buggy Variant = "buggy"

	// Fixed demos show the corrected pattern and check their invariants.
	Fixed Variant = "fixed"
)

// Topics, in presentation order.
const (
	TopicConcurrency = "concurrency"
	TopicErrors      = "errors"
	TopicMemory      = "memory"
	TopicOwnership   = "ownership"
	TopicPerf        = "perf"
)

// Demo is one registered demonstration program.
type Demo struct {
	// Name identifies the demo to the CLI. Unique across the lab.
	Name string

	// Topic is one of the Topic constants.
	Topic string

	// Variant is Buggy or Fixed.
	Variant Variant

	// Summary is a one-line description for golab list.
	Summary string

	// Run executes the demonstration, writing progress lines to out.
	// Buggy variants may panic; the Runner recovers at this boundary.
	Run func(ctx context.Context, out io.Writer) error
}

var (
	registry = map[string]Demo{}
	ordered  []string
)

// register adds a demo at init time. Duplicate names are a programming
// error.
func register(d Demo) {
	if _, ok := registry[d.Name]; ok {
		panic("lab: duplicate demo name " + d.Name)
	}
	registry[d.Name] = d
	ordered = append(ordered, d.Name)
}

// All returns every demo in registration order.
func All() []Demo {
	out := make([]Demo, 0, len(ordered))
	for _, name := range ordered {
		out = append(out, registry[name])
	}
	return out
}

// ByName looks up a demo.
func ByName(name string) (Demo, error) {
	d, ok := registry[name]
	if !ok {
		return Demo{}, errors.Newf("lab: unknown demo %q (try golab list)", name)
	}
	return d, nil
}

// ByTopic returns the demos for one topic, buggy variant first.
func ByTopic(topic string) []Demo {
	var out []Demo
	for _, name := range ordered {
		if d := registry[name]; d.Topic == topic {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Variant == Buggy && out[j].Variant == Fixed
	})
	return out
}

// Topics returns the distinct topics in presentation order.
func Topics() []string {
	return []string{TopicConcurrency, TopicErrors, TopicMemory, TopicOwnership, TopicPerf}
}
