package terminal

import (
	"github.com/kungfusheep/glint/device"
	"github.com/kungfusheep/glint/display"
	"github.com/kungfusheep/glint/geom"
	"github.com/kungfusheep/glint/internal/glog"
)

// options collects constructor configuration set via Option functions,
// in the teacher's plain-struct-plus-setter style rather than a config
// file (the core has no persisted state to load one from).
type options struct {
	minimumSize geom.Vector
	expand      bool
	contract    bool
	logger      glog.Logger
	device      device.Device
}

// Option configures a Terminal at construction time.
type Option func(*options)

// WithMinimumSize sets the smallest size contraction will ever shrink to,
// regardless of how little content the surface holds.
func WithMinimumSize(size geom.Vector) Option {
	return func(o *options) { o.minimumSize = size }
}

// WithExpand toggles whether adding or moving an element grows the
// terminal to fit it. Defaults to true.
func WithExpand(enabled bool) Option {
	return func(o *options) { o.expand = enabled }
}

// WithContract toggles whether deleting or moving an element shrinks
// the terminal back down to fit what remains. Defaults to true.
func WithContract(enabled bool) Option {
	return func(o *options) { o.contract = enabled }
}

// WithLogger overrides the default glog.Default logger.
func WithLogger(l glog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDevice overrides the Device the surface drives, in place of the
// display's own AsDevice adapter — mainly for tests that want to
// observe the terminal's updates directly.
func WithDevice(d device.Device) Option {
	return func(o *options) { o.device = d }
}

func newOptions(disp *display.Display, opts []Option) options {
	o := options{
		minimumSize: geom.Vec(1, 1),
		expand:      true,
		contract:    true,
		logger:      glog.Default,
		device:      disp.AsDevice(),
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
