// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.astrophena.name/pig/cli"
	"go.astrophena.name/pig/devtools/internal"
	"go.astrophena.name/pig/hooks"
	"go.astrophena.name/pig/logger"
)

const hookShellScript = `#!/bin/sh
echo "==> Running pre-commit hooks..."
go tool pre-commit
`

func main() { cli.Main(new(app)) }

type app struct {
	config string
	check  bool
	jobs   int
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.config, "config", hooks.DefaultFile, "Read hook declarations from `file`, relative to the repository root.")
	fs.BoolVar(&a.check, "check", false, "Only validate hook declarations, don't run them.")
	fs.IntVar(&a.jobs, "jobs", 1, "Run up to `n` hooks at once.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	root, err := internal.Root()
	if err != nil {
		return err
	}

	decls, err := hooks.Load(filepath.Join(root, a.config))
	if err != nil {
		return err
	}
	if err := hooks.Validate(decls, exec.LookPath); err != nil {
		return err
	}
	if a.check {
		fmt.Fprintf(env.Stdout, "%d hooks OK\n", len(decls))
		return nil
	}

	isCI := env.Getenv("CI") == "true"
	if !isCI {
		if err := installHook(root); err != nil {
			return err
		}
	}

	var enabled []hooks.Decl
	for _, d := range decls {
		if d.Enabled(isCI) {
			enabled = append(enabled, d)
		}
	}
	skipped := len(decls) - len(enabled)

	files := env.Args
	if len(files) == 0 && needsFiles(enabled) {
		files, err = stagedFiles(ctx, root)
		if err != nil {
			return err
		}
		logger.Debug(ctx, "found staged files", slog.Int("count", len(files)))
	}

	before, err := modifiedFiles(ctx, root)
	if err != nil {
		logger.Debug(ctx, "not checking for files modified by hooks", slog.Any("err", err))
	}

	var (
		mu    sync.Mutex
		width = cli.TerminalWidth(env.Stdout)
	)
	results, err := hooks.Run(ctx, enabled, hooks.Options{
		Files: files,
		Dir:   root,
		Jobs:  a.jobs,
		OnStart: func(i int, d hooks.Decl) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintln(env.Stdout, progressMessage(i+1, len(enabled), d.Label(), width))
		},
	})
	if err != nil {
		return err
	}

	if before != nil {
		after, err := modifiedFiles(ctx, root)
		if err != nil {
			return err
		}
		if changed := changedFiles(before, after); len(changed) > 0 {
			return fmt.Errorf("hooks modified files:\n%s", strings.Join(changed, "\n"))
		}
	}

	fmt.Fprintf(env.Stdout, "==> %d passed, %d skipped\n", len(results), skipped)
	return nil
}

func installHook(root string) error {
	hooksDir := filepath.Join(root, ".git", "hooks")
	if fi, err := os.Stat(filepath.Join(root, ".git")); err != nil || !fi.IsDir() {
		// Worktrees and submodules have a .git file; leave them alone.
		return nil
	}
	hookPath := filepath.Join(hooksDir, "pre-commit")
	if _, err := os.Stat(hookPath); !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(hookPath, []byte(hookShellScript), 0o755)
}

func needsFiles(decls []hooks.Decl) bool {
	for _, d := range decls {
		if d.PassesFilenames() {
			return true
		}
	}
	return false
}

func stagedFiles(ctx context.Context, root string) ([]string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--name-only", "--diff-filter=ACMR", "-z")
	cmd.Dir = root
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("listing staged files: %v:\n%s", err, stderr.String())
	}
	var files []string
	for f := range strings.SplitSeq(stdout.String(), "\x00") {
		if f != "" {
			files = append(files, f)
		}
	}
	return files, nil
}

// modifiedFiles returns the tracked files that differ from the index, keyed
// by path, with a checksum of their contents.
func modifiedFiles(ctx context.Context, root string) (map[string][sha256.Size]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", "diff", "--name-only", "--no-ext-diff", "-z")
	cmd.Dir = root
	// Don't let Git pick up a repository above root.
	cmd.Env = append(os.Environ(), "GIT_DIR="+filepath.Join(root, ".git"), "GIT_WORK_TREE="+root)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("listing modified files: %v:\n%s", err, stderr.String())
	}

	files := make(map[string][sha256.Size]byte)
	for f := range strings.SplitSeq(stdout.String(), "\x00") {
		if f == "" {
			continue
		}
		b, err := os.ReadFile(filepath.Join(root, f))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		files[f] = sha256.Sum256(b)
	}
	return files, nil
}

// changedFiles returns the sorted paths whose state differs between two
// modifiedFiles results.
func changedFiles(before, after map[string][sha256.Size]byte) []string {
	var changed []string
	for f, sum := range after {
		if prev, ok := before[f]; !ok || prev != sum {
			changed = append(changed, f)
		}
	}
	for f := range before {
		if _, ok := after[f]; !ok {
			changed = append(changed, f)
		}
	}
	slices.Sort(changed)
	return changed
}

// progressMessage formats a progress line, shortening the label to fit
// into width columns. Zero width means no limit.
func progressMessage(current, total int, label string, width int) string {
	prefix := fmt.Sprintf("[%d/%d] Running hook ", current, total)
	msg := prefix + label
	if width <= 0 || len([]rune(msg)) <= width {
		return msg
	}

	avail := width - len([]rune(prefix))
	if avail <= 0 {
		return prefix
	}
	r := []rune(label)
	if avail > 3 {
		return prefix + string(r[:avail-3]) + "..."
	}
	return prefix + string(r[:avail])
}
