// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package executor applies texture commands on the far side of a
// command.Channel.
//
// An Executor owns the texture ids. The front end never waits on it except
// for CreateTextureCommand, which Serve answers through the command's
// reply channel. Every other command is applied in arrival order, and a
// command the executor cannot apply is logged and dropped; the front end
// has already moved on.
//
// Two executors are registered:
//   - "state" mirrors each texture as gputypes descriptors (view dimension,
//     sampler state) and checks every command against it.
//   - "discard" allocates ids and counts commands without keeping state.
//
// Example:
//
//	ch := command.NewChannel()
//	ex, err := executor.New("state", executor.WithMaxTextures(1024))
//	if err != nil {
//	    return err
//	}
//	go func() { _ = executor.Serve(ctx, ch, ex) }()
package executor
