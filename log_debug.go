// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build bridge_debug

package bridge

import (
	"log/slog"
	"os"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

// SetLogger sets the logger for lifecycle events.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

func debugf(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}
