// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package executor

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/webgl/command"
)

// Executor errors. They are reported per command and never stop Serve.
var (
	// ErrUnknownTexture is returned for a command naming an id that was
	// never allocated or has been deleted.
	ErrUnknownTexture = errors.New("executor: unknown texture")

	// ErrNoBoundTexture is returned for a command addressing a binding
	// target with no texture bound.
	ErrNoBoundTexture = errors.New("executor: no texture bound to target")

	// ErrTargetMismatch is returned when a texture is bound to a target
	// other than the one it was first bound to.
	ErrTargetMismatch = errors.New("executor: texture target mismatch")

	// ErrInvalidArgument is returned for an enumerant or value the
	// executor does not accept.
	ErrInvalidArgument = errors.New("executor: invalid argument")

	// ErrUnknownExecutor is returned by New for an unregistered name.
	ErrUnknownExecutor = errors.New("executor: unknown executor")
)

// Executor applies commands. Execute is called from one goroutine at a
// time, in channel order. A CreateTextureCommand must always be answered
// on its reply channel, with a zero id when no texture can be allocated.
type Executor interface {
	Execute(cmd command.Command) error
	Stats() Stats
}

// Stats summarizes what an executor has done.
type Stats struct {
	// Commands counts applied commands by type.
	Commands map[command.CommandType]int
	// Failed counts commands that returned an error.
	Failed int
	// Live is the number of allocated, not yet deleted textures.
	Live int
	// AllocationFailures counts allocations answered with a zero id.
	AllocationFailures int
}

// Total returns the number of applied commands of all types.
func (s Stats) Total() int {
	n := 0
	for _, c := range s.Commands {
		n += c
	}
	return n
}

func (s *Stats) count(t command.CommandType) {
	if s.Commands == nil {
		s.Commands = make(map[command.CommandType]int)
	}
	s.Commands[t]++
}

func (s Stats) clone() Stats {
	out := s
	out.Commands = make(map[command.CommandType]int, len(s.Commands))
	for k, v := range s.Commands {
		out.Commands[k] = v
	}
	return out
}

// Serve applies the commands of ch to ex until ch is closed or ctx is
// done. Commands still queued when ch closes are applied before Serve
// returns nil. A failing command is logged and skipped.
func Serve(ctx context.Context, ch *command.Channel, ex Executor) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-ch.Commands():
			apply(ex, cmd)
		case <-ch.Done():
			for {
				select {
				case cmd := <-ch.Commands():
					apply(ex, cmd)
				default:
					return nil
				}
			}
		}
	}
}

func apply(ex Executor, cmd command.Command) {
	if err := ex.Execute(cmd); err != nil {
		slogger().Error("command failed", "command", cmd.Type(), "error", err)
	}
}
