// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogHandler_Attributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf)))

	logger.Warn("service restarted",
		slog.String("service", "http"),
		slog.Int("attempt", 2),
		slog.Bool("backoff", true),
		slog.Duration("delay", time.Second),
	)

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service restarted"`,
		`"service":"http"`,
		`"attempt":2`,
		`"backoff":true`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output, got: %s", want, out)
		}
	}
}

func TestSlogHandler_GroupsAndWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf))).
		With(slog.String("tree", "vortax")).
		WithGroup("supervisor")

	logger.Info("started", slog.String("name", "api"))

	out := buf.String()
	if !strings.Contains(out, `"supervisor.tree":"vortax"`) && !strings.Contains(out, `"tree":"vortax"`) {
		t.Errorf("expected tree attribute, got: %s", out)
	}
	if !strings.Contains(out, `"supervisor.name":"api"`) {
		t.Errorf("expected grouped key, got: %s", out)
	}
}

func TestSlogHandler_WithGroupEmptyName(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler()
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestToZerologLevel(t *testing.T) {
	t.Parallel()

	cases := map[slog.Level]string{
		slog.LevelDebug: "debug",
		slog.LevelInfo:  "info",
		slog.LevelWarn:  "warn",
		slog.LevelError: "error",
	}
	for in, want := range cases {
		if got := toZerologLevel(in).String(); got != want {
			t.Errorf("toZerologLevel(%v) = %s, want %s", in, got, want)
		}
	}
}
