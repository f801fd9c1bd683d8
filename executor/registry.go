// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package executor

import (
	"github.com/cockroachdb/errors"
	"github.com/gogpu/gpucontext"
)

// Registered executor names.
const (
	NameState   = "state"
	NameDiscard = "discard"
)

// Factory creates an executor.
type Factory func(opts ...Option) Executor

// registry holds the executor factories, preferring state over discard.
var registry = gpucontext.NewRegistry[Factory](
	gpucontext.WithPriority(NameState, NameDiscard),
)

func init() {
	Register(NameState, func(opts ...Option) Executor { return NewState(opts...) })
	Register(NameDiscard, func(opts ...Option) Executor { return NewDiscard(opts...) })
}

// Register adds or replaces the factory for name.
func Register(name string, f Factory) {
	registry.Register(name, func() Factory { return f })
}

// Unregister removes the factory for name.
func Unregister(name string) {
	registry.Unregister(name)
}

// Available returns the registered executor names.
func Available() []string {
	return registry.Available()
}

// Default returns the name of the preferred registered executor, or "" if
// none is registered.
func Default() string {
	return registry.BestName()
}

// New creates the executor registered as name. An empty name selects
// Default.
func New(name string, opts ...Option) (Executor, error) {
	if name == "" {
		name = Default()
	}
	if !registry.Has(name) {
		return nil, errors.Wrapf(ErrUnknownExecutor, "%q", name)
	}
	return registry.Get(name)(opts...), nil
}
