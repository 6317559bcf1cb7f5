// Package instance reads, writes and generates knapsack problem instances.
//
// A File holds one or more named instances; each instance has a capacity and
// an ordered list of items. Three encodings share the same layout:
//
//	JSON  {"instances":[{"name":"classic","capacity":50,"items":[{"weight":10,"value":60}]}]}
//	YAML  instances: [{name: classic, capacity: 50, items: [{weight: 10, value: 60}]}]
//	TOML  [[instances]] name = "classic" … [[instances.items]] weight = 10 …
//
// The package does not judge item semantics (positive weights etc.); that is
// the solver's job, see bnb.Knapsack.
package instance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/knapsack/bnb"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for a file extension or format name that
	// has no codec.
	ErrUnknownFormat = errors.New("instance: unknown format")

	// ErrNoInstances is returned when a decoded file contains no instance.
	ErrNoInstances = errors.New("instance: file contains no instances")

	// ErrMalformed wraps decoder failures (syntax, unknown fields, types).
	ErrMalformed = errors.New("instance: malformed input")

	// ErrBadGenConfig is returned by Generate for an invalid GenConfig.
	ErrBadGenConfig = errors.New("instance: invalid generator config")
)

// Entry is one item of an instance. Name is optional and only used in reports.
type Entry struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Weight int64  `json:"weight" yaml:"weight" toml:"weight"`
	Value  int64  `json:"value" yaml:"value" toml:"value"`
}

// Instance is a single knapsack problem.
type Instance struct {
	Name     string  `json:"name" yaml:"name" toml:"name"`
	Capacity int64   `json:"capacity" yaml:"capacity" toml:"capacity"`
	Items    []Entry `json:"items" yaml:"items" toml:"items"`
}

// BnbItems converts the entries to solver items, preserving order.
func (in Instance) BnbItems() []bnb.Item {
	items := make([]bnb.Item, len(in.Items))
	var i int
	for i = range in.Items {
		items[i] = bnb.Item{Weight: in.Items[i].Weight, Value: in.Items[i].Value}
	}

	return items
}

// Label returns the display name of entry i: its Name, or "item <i>".
func (in Instance) Label(i int) string {
	if in.Items[i].Name != "" {
		return in.Items[i].Name
	}

	return fmt.Sprintf("item %d", i)
}

// File is the top-level document of an instance file.
type File struct {
	Instances []Instance `json:"instances" yaml:"instances" toml:"instances"`
}

// normalize rejects empty files and names unnamed instances "instance-<i>".
func (f *File) normalize() error {
	if len(f.Instances) == 0 {
		return ErrNoInstances
	}
	var i int
	for i = range f.Instances {
		if f.Instances[i].Name == "" {
			f.Instances[i].Name = fmt.Sprintf("instance-%d", i)
		}
	}

	return nil
}
