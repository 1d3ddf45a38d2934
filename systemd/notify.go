// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package systemd

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"go.astrophena.name/pig/cli"
	"go.astrophena.name/pig/logger"
)

// State represents the sd-notify state.
// See https://www.freedesktop.org/software/systemd/man/latest/sd_notify.html#Well-known%20assignments for all possible values.
type State string

const (
	// Ready tells the service manager that service startup is
	// finished, or the service finished loading its configuration.
	Ready State = "READY=1"

	// Stopping tells the service manager that service is stopping.
	Stopping State = "STOPPING=1"

	// watchdog tells the service manager to update the watchdog timestamp.
	watchdog State = "WATCHDOG=1"
)

// Status returns a State that describes the service state in free form, like
// "serving on :3000".
func Status(status string) State {
	return State("STATUS=" + status)
}

// Notify sends states to the service manager. It does nothing if
// NOTIFY_SOCKET is not set.
func Notify(ctx context.Context, states ...State) error {
	name := cli.GetEnv(ctx).Getenv("NOTIFY_SOCKET")
	if name == "" {
		return nil
	}

	conn, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Net: "unixgram", Name: name})
	if err != nil {
		return fmt.Errorf("systemd: %w", err)
	}
	defer conn.Close()

	var msg []byte
	for i, s := range states {
		if i > 0 {
			msg = append(msg, '\n')
		}
		msg = append(msg, s...)
	}
	if _, err := conn.Write(msg); err != nil {
		return fmt.Errorf("systemd: %w", err)
	}
	return nil
}

// Watchdog pings the service manager until ctx is canceled, if the watchdog
// is enabled for the service.
func Watchdog(ctx context.Context) {
	interval := watchdogInterval(cli.GetEnv(ctx).Getenv, os.Getpid())
	if interval <= 0 {
		return
	}
	logger.Debug(ctx, "starting systemd watchdog", slog.Duration("interval", interval))

	go func() {
		// Ping twice per interval so a slow tick never misses the deadline.
		ticker := time.NewTicker(interval / 2)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := Notify(ctx, watchdog); err != nil {
					logger.Error(ctx, "systemd watchdog ping failed", slog.Any("err", err))
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

func watchdogInterval(getenv func(string) string, pid int) time.Duration {
	if p := getenv("WATCHDOG_PID"); p != "" && p != strconv.Itoa(pid) {
		return 0
	}
	usec, err := strconv.Atoi(getenv("WATCHDOG_USEC"))
	if err != nil || usec <= 0 {
		return 0
	}
	return time.Duration(usec) * time.Microsecond
}
