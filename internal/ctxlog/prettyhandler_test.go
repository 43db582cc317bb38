// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrettyHandler(t *testing.T) {
	testCases := []struct {
		name    string
		options *slog.HandlerOptions
		opts    []Option
	}{
		{name: "with nil options", options: nil, opts: []Option{}},
		{
			name: "with custom options",
			options: &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			},
			opts: []Option{},
		},
		{
			name:    "with functional options",
			options: &slog.HandlerOptions{},
			opts:    []Option{WithColor(), WithOutputEmptyAttrs()},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewPrettyHandler(tc.options, tc.opts...)
			require.NotNil(t, handler)
			assert.NotNil(t, handler.h)
			assert.NotNil(t, handler.b)
			assert.NotNil(t, handler.m)
		})
	}
}

func TestPrettyHandlerEnabled(t *testing.T) {
	testCases := []struct {
		name    string
		level   slog.Level
		options *slog.HandlerOptions
		want    bool
	}{
		{
			name:    "debug level with debug handler",
			level:   slog.LevelDebug,
			options: &slog.HandlerOptions{Level: slog.LevelDebug},
			want:    true,
		},
		{
			name:    "debug level with info handler",
			level:   slog.LevelDebug,
			options: &slog.HandlerOptions{Level: slog.LevelInfo},
			want:    false,
		},
		{
			name:    "error level with warn handler",
			level:   slog.LevelError,
			options: &slog.HandlerOptions{Level: slog.LevelWarn},
			want:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewPrettyHandler(tc.options)
			assert.Equal(t, tc.want, handler.Enabled(context.Background(), tc.level))
		})
	}
}

func TestPrettyHandlerWithAttrsAndGroup(t *testing.T) {
	handler := NewPrettyHandler(&slog.HandlerOptions{})

	withAttrs, ok := handler.WithAttrs([]slog.Attr{slog.String("key", "value")}).(*PrettyHandler)
	require.True(t, ok)
	assert.Same(t, handler.b, withAttrs.b, "derived handler should share the buffer")
	assert.Same(t, handler.m, withAttrs.m, "derived handler should share the mutex")

	withGroup, ok := handler.WithGroup("group").(*PrettyHandler)
	require.True(t, ok)
	assert.Same(t, handler.b, withGroup.b)
	assert.Same(t, handler.m, withGroup.m)
}

func TestPrettyHandlerHandle(t *testing.T) {
	testCases := []struct {
		name           string
		level          slog.Level
		message        string
		attrs          []any
		options        []Option
		expectInOutput []string
	}{
		{
			name:           "basic info message",
			level:          slog.LevelInfo,
			message:        "test message",
			attrs:          []any{},
			expectInOutput: []string{"INFO:", "test message"},
		},
		{
			name:           "debug message with attributes",
			level:          slog.LevelDebug,
			message:        "debug message",
			attrs:          []any{"key", "value", "number", 42},
			expectInOutput: []string{"DEBUG:", "debug message", "key", "value", "42"},
		},
		{
			name:           "error message",
			level:          slog.LevelError,
			message:        "error message",
			attrs:          []any{},
			expectInOutput: []string{"ERROR:", "error message"},
		},
		{
			name:           "message with empty attrs output enabled",
			level:          slog.LevelInfo,
			message:        "test message",
			attrs:          []any{},
			options:        []Option{WithOutputEmptyAttrs()},
			expectInOutput: []string{"INFO:", "test message", "{}"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			opts := append([]Option{WithDestinationWriter(&buf)}, tc.options...)
			handler := NewPrettyHandler(&slog.HandlerOptions{
				Level: slog.LevelDebug,
			}, opts...)

			record := slog.NewRecord(time.Now(), tc.level, tc.message, 0)
			record.Add(tc.attrs...)

			require.NoError(t, handler.Handle(context.Background(), record))

			output := buf.String()
			for _, expected := range tc.expectInOutput {
				assert.Contains(t, output, expected)
			}

			assert.True(t, strings.HasSuffix(output, "\n"), "output should end with newline")
		})
	}
}

// With color on, each level maps to a distinct SGR sequence around the level
// token.
func TestPrettyHandlerLevelColors(t *testing.T) {
	var buf bytes.Buffer

	handler := NewPrettyHandler(&slog.HandlerOptions{
		Level: slog.LevelDebug,
	}, WithDestinationWriter(&buf), WithColor())

	testCases := []struct {
		level    slog.Level
		wantCode string
	}{
		{level: slog.LevelDebug, wantCode: "\033[37m"},
		{level: slog.LevelInfo, wantCode: "\033[36m"},
		{level: slog.LevelWarn, wantCode: "\033[33m"},
		{level: slog.LevelError, wantCode: "\033[31m"},
		{level: slog.LevelError + 2, wantCode: "\033[95m"},
	}

	for _, tc := range testCases {
		buf.Reset()

		record := slog.NewRecord(time.Now(), tc.level, "test message", 0)
		require.NoError(t, handler.Handle(context.Background(), record))
		assert.Contains(t, buf.String(), tc.wantCode)
	}
}

func TestPrettyHandlerReplaceAttr(t *testing.T) {
	var buf bytes.Buffer

	replaceAttr := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}

		if a.Key == "secret" {
			return slog.String("secret", "[REDACTED]")
		}

		return a
	}

	handler := NewPrettyHandler(&slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: replaceAttr,
	}, WithDestinationWriter(&buf))

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
	record.Add("secret", "password123", "public", "data")

	require.NoError(t, handler.Handle(context.Background(), record))

	output := buf.String()
	assert.Contains(t, output, "[REDACTED]")
	assert.NotContains(t, output, "password123")
	assert.Contains(t, output, "public")
}

func TestSuppressDefaults(t *testing.T) {
	suppressFunc := suppressDefaults(nil)

	testCases := []struct {
		name string
		attr slog.Attr
		want slog.Attr
	}{
		{name: "time key suppressed", attr: slog.Time(slog.TimeKey, time.Now()), want: slog.Attr{}},
		{name: "level key suppressed", attr: slog.Any(slog.LevelKey, slog.LevelInfo), want: slog.Attr{}},
		{name: "message key suppressed", attr: slog.String(slog.MessageKey, "test"), want: slog.Attr{}},
		{name: "custom key passes through", attr: slog.String("custom", "value"), want: slog.String("custom", "value")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := suppressFunc([]string{}, tc.attr)
			assert.True(t, got.Equal(tc.want), "suppressDefaults() = %v, want %v", got, tc.want)
		})
	}
}

type failingHandler struct{}

func (h *failingHandler) Enabled(ctx context.Context, level slog.Level) bool { return true }
func (h *failingHandler) Handle(ctx context.Context, r slog.Record) error {
	return errors.New("failing handler error")
}
func (h *failingHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }
func (h *failingHandler) WithGroup(name string) slog.Handler       { return h }

func TestComputeAttrsError(t *testing.T) {
	handler := &PrettyHandler{
		h: &failingHandler{},
		b: &bytes.Buffer{},
		m: &sync.Mutex{},
	}

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "test", 0)
	_, err := handler.computeAttrs(context.Background(), record)
	assert.Error(t, err)
}

type failingWriter struct{}

func (w *failingWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func TestHandleWriteError(t *testing.T) {
	handler := NewPrettyHandler(&slog.HandlerOptions{
		Level: slog.LevelDebug,
	}, WithDestinationWriter(&failingWriter{}))

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
	err := handler.Handle(context.Background(), record)
	assert.ErrorIs(t, err, ErrIoWrite)
}
