// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

// config holds the construction parameters of one bridge.
type config struct {
	capacity int
	handler  Handler
	onStart  func(Handle)
}

func defaultConfig() config {
	return config{
		capacity: DefaultCapacity,
		handler:  DefaultHandler,
	}
}

func (c config) validate() error {
	if c.capacity < minCapacity {
		return ErrInvalidCapacity
	}
	return nil
}

// Option configures [Start].
type Option func(*config)

// WithCapacity sets the capacity of each directional pipe.
// lfq rounds it up to the next power of two; values below 2 make Start
// fail.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithHandler replaces [DefaultHandler]. A nil handler keeps the default.
func WithHandler(h Handler) Option {
	return func(c *config) {
		if h != nil {
			c.handler = h
		}
	}
}

// WithOnStart registers f to receive the handle once it is published,
// before the loop consumes its first command. f runs on the loop thread
// and must not block; Go callers use it to hand the handle to other
// goroutines.
func WithOnStart(f func(Handle)) Option {
	return func(c *config) {
		c.onStart = f
	}
}
