// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package systemd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"

	"go.astrophena.name/pig/cli"
)

// ErrNotActivated is returned by [Socket] when the process didn't receive
// sockets from systemd.
var ErrNotActivated = errors.New("systemd: LISTEN_PID not set, not started by socket activation")

const listenFDsStart = 3

// Socket returns the listener for the socket named name (FileDescriptorName=
// in the socket unit) passed by systemd socket activation.
func Socket(ctx context.Context, name string) (net.Listener, error) {
	fd, err := socketFD(cli.GetEnv(ctx).Getenv, os.Getpid(), name)
	if err != nil {
		return nil, err
	}
	f := os.NewFile(uintptr(fd), name)
	if f == nil {
		return nil, fmt.Errorf("systemd: invalid file descriptor %d", fd)
	}
	defer f.Close()
	return net.FileListener(f)
}

func socketFD(getenv func(string) string, pid int, name string) (int, error) {
	pidStr := getenv("LISTEN_PID")
	if pidStr == "" {
		return 0, ErrNotActivated
	}
	listenPID, err := strconv.Atoi(pidStr)
	if err != nil {
		return 0, fmt.Errorf("systemd: invalid LISTEN_PID: %w", err)
	}
	if listenPID != pid {
		return 0, fmt.Errorf("systemd: LISTEN_PID (%d) does not match current PID (%d)", listenPID, pid)
	}

	n, err := strconv.Atoi(getenv("LISTEN_FDS"))
	if err != nil {
		return 0, fmt.Errorf("systemd: invalid LISTEN_FDS: %w", err)
	}
	if n < 1 {
		return 0, errors.New("systemd: no file descriptors received")
	}

	names := strings.Split(getenv("LISTEN_FDNAMES"), ":")
	if len(names) != n {
		return 0, fmt.Errorf("systemd: number of file descriptor names (%d) does not match LISTEN_FDS (%d)", len(names), n)
	}
	i := slices.Index(names, name)
	if i < 0 {
		return 0, fmt.Errorf("systemd: socket name %q not found in LISTEN_FDNAMES", name)
	}
	return listenFDsStart + i, nil
}
