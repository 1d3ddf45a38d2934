// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"golang.org/x/sync/errgroup"

	"go.astrophena.name/pig/logger"
)

// ExitError reports a hook whose command failed.
type ExitError struct {
	// ID of the failed hook.
	ID string
	// Code is the exit code of the command, or -1 if it didn't exit
	// normally (for example, it couldn't be started).
	Code int
	// Output is the combined standard output and error of the command.
	Output []byte
	// Err is the underlying error.
	Err error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("hook %q failed: %v", e.ID, e.Err)
	if out := bytes.TrimSpace(e.Output); len(out) > 0 {
		msg += ":\n" + string(out)
	}
	return msg
}

func (e *ExitError) Unwrap() error { return e.Err }

// Result is the outcome of a single hook.
type Result struct {
	Hook     Decl
	Duration time.Duration
	// Err is nil on success and an *ExitError otherwise.
	Err error
}

// Options configure [Run].
type Options struct {
	// Files are the changed files, passed to hooks that accept them.
	Files []string
	// Dir is the working directory of the commands. Empty means the current
	// directory.
	Dir string
	// Env, if not nil, is the environment of the commands.
	Env []string
	// Jobs limits how many hooks run at once. Values below one mean one.
	Jobs int
	// OnStart, if set, is called before each hook starts with the index of
	// the hook in the run. With Jobs above one it is called concurrently.
	OnStart func(i int, d Decl)
}

// Run runs every hook and returns their results in declaration order. The
// returned error joins the errors of all failed hooks; a failing hook does
// not stop the others.
func Run(ctx context.Context, decls []Decl, opts Options) ([]Result, error) {
	results := make([]Result, len(decls))

	var g errgroup.Group
	g.SetLimit(max(opts.Jobs, 1))
	for i, d := range decls {
		g.Go(func() error {
			if opts.OnStart != nil {
				opts.OnStart(i, d)
			}
			start := time.Now()
			err := runOne(ctx, d, opts)
			results[i] = Result{Hook: d, Duration: time.Since(start), Err: err}
			logger.Debug(ctx, "hook finished",
				slog.String("id", d.ID),
				slog.Duration("duration", results[i].Duration),
				slog.Bool("ok", err == nil),
			)
			return nil
		})
	}
	g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return results, errors.Join(errs...)
}

func runOne(ctx context.Context, d Decl, opts Options) error {
	argv, err := d.Command(opts.Files)
	if err != nil {
		return &ExitError{ID: d.ID, Code: -1, Err: err}
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env
	cmd.Stdout = &out
	cmd.Stderr = &out

	logger.Debug(ctx, "running hook", slog.String("id", d.ID), slog.Any("argv", argv))
	if err := cmd.Run(); err != nil {
		code := -1
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			code = ee.ExitCode()
		}
		return &ExitError{ID: d.ID, Code: code, Output: out.Bytes(), Err: err}
	}
	return nil
}
