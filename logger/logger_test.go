// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"go.astrophena.name/pig/testutil"
)

func TestLogfWriter(t *testing.T) {
	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	n, err := Logf(logf).Write([]byte("hello"))
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, n, 5)
	testutil.AssertEqual(t, logged, true)
	testutil.AssertEqual(t, message, "hello")
}

func TestFanout(t *testing.T) {
	l := New(nil)
	var a, b bytes.Buffer
	l.Attach(slog.NewTextHandler(&a, &slog.HandlerOptions{Level: l.Level}))
	l.Attach(slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: l.Level}))

	ctx := Put(context.Background(), l)
	Info(ctx, "translated", slog.Int("bytes", 42))
	Debug(ctx, "hidden")

	if !strings.Contains(a.String(), "msg=translated bytes=42") {
		t.Errorf("text handler output = %q", a.String())
	}
	if !strings.Contains(b.String(), `"msg":"translated","bytes":42`) {
		t.Errorf("JSON handler output = %q", b.String())
	}
	if strings.Contains(a.String()+b.String(), "hidden") {
		t.Errorf("debug message logged at info level")
	}

	LevelVar(ctx).Set(slog.LevelDebug)
	Debug(ctx, "shown")
	if !strings.Contains(a.String(), "msg=shown") {
		t.Errorf("debug message not logged after level change: %q", a.String())
	}
}

func TestWithAttrs(t *testing.T) {
	l := New(nil)
	var buf bytes.Buffer
	l.Attach(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: l.Level}))

	l.With(slog.String("hook", "fmt")).WithGroup("run").Info("done", slog.Int("code", 0))
	if !strings.Contains(buf.String(), "hook=fmt run.code=0") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestDefault(t *testing.T) {
	ctx := context.Background()
	testutil.AssertEqual(t, IsDefault(Get(ctx)), true)
	testutil.AssertEqual(t, IsDefault(Get(Put(ctx, New(nil)))), false)
	// Must not panic.
	Error(ctx, "discarded")
}
