// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !bridge_debug

package bridge

import "log/slog"

// SetLogger sets the logger for lifecycle events.
// Without the bridge_debug build tag it does nothing; the signature is
// kept so callers compile either way.
func SetLogger(l *slog.Logger) {}

// debugf is compiled away in release builds.
func debugf(msg string, args ...any) {}
