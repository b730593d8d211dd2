//go:build !lognone && !logprintln

package glog

import "log/slog"

func init() {
	Default = slog.Default()
}
