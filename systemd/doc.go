// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package systemd implements the parts of systemd's service protocols that a
long running server needs: the sd-notify protocol, the watchdog and socket
activation.

Everything reads its configuration from the environment of [cli.Env] in the
context and does nothing when the process was not started by systemd.
*/
package systemd
