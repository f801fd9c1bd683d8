// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package executor

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/webgl/command"
)

func TestSetLoggerReportsFailedCommands(t *testing.T) {
	orig := slogger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	ch := command.NewChannel()
	_ = ch.Send(command.DeleteTextureCommand{Texture: command.NewTextureID(1, 1)})
	ch.Close()
	_ = Serve(context.Background(), ch, NewState())

	out := buf.String()
	if !strings.Contains(out, "command failed") || !strings.Contains(out, "DeleteTexture") {
		t.Errorf("log output = %q", out)
	}
}

func TestSetLoggerNil(t *testing.T) {
	orig := slogger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(nil)
	if slogger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should disable logging")
	}
}

func TestWithLoggerOverridesPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	s := NewState(WithMaxTextures(1), WithLogger(l))

	s.Allocate()
	s.Allocate()
	if !strings.Contains(buf.String(), "texture limit reached") {
		t.Errorf("log output = %q", buf.String())
	}
}
