package anim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Controller drives one scalar value from a start to an end over a fixed
// duration, shaped by an easing function. It has no clock of its own; the
// owner feeds elapsed frame time into Tick, typically from an
// animation-frame event.
type Controller struct {
	tween *gween.Tween
	value float64
	done  bool
}

// NewController returns an idle controller holding the given value.
func NewController(value float64) *Controller {
	return &Controller{value: value, done: true}
}

// Start begins animating from the current value to the target.
func (c *Controller) Start(to float64, duration time.Duration, fn ease.TweenFunc) {
	if duration <= 0 {
		c.value = to
		c.tween = nil
		c.done = true
		return
	}
	c.tween = gween.New(float32(c.value), float32(to), float32(duration.Seconds()), fn)
	c.done = false
}

// Tick advances the animation by the elapsed frame time and returns the
// current value and whether the animation has completed. Ticking an idle
// controller returns the held value.
func (c *Controller) Tick(dt time.Duration) (float64, bool) {
	if c.done || c.tween == nil {
		return c.value, true
	}
	v, finished := c.tween.Update(float32(dt.Seconds()))
	c.value = float64(v)
	if finished {
		c.done = true
		c.tween = nil
	}
	return c.value, c.done
}

// Value returns the current animated value.
func (c *Controller) Value() float64 { return c.value }

// Done returns true when no animation is in flight.
func (c *Controller) Done() bool { return c.done }
