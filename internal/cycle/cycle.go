// Package cycle provides a list with a movable cursor that either stops at
// its ends or wraps around.
package cycle

// Cycler tracks a position in a list of items. The index is -1 until the
// first step, meaning "before the first item".
type Cycler[T any] struct {
	items []T
	index int
	wrap  bool
}

// New returns an empty Cycler. With wrap set, stepping past either end
// continues from the other end; otherwise it reports no further element.
func New[T any](wrap bool) *Cycler[T] {
	return &Cycler[T]{index: -1, wrap: wrap}
}

// Next advances one item.
func (c *Cycler[T]) Next() (T, bool) {
	var zero T
	n := len(c.items)
	if n == 0 || (!c.wrap && c.index == n-1) {
		return zero, false
	}
	c.index = (c.index + 1) % n
	return c.items[c.index], true
}

// Prev retreats one item. From the initial position a wrapping Cycler
// yields the last item.
func (c *Cycler[T]) Prev() (T, bool) {
	var zero T
	n := len(c.items)
	if n == 0 || (!c.wrap && c.index <= 0) {
		return zero, false
	}
	if c.index <= 0 {
		c.index = n - 1
	} else {
		c.index--
	}
	return c.items[c.index], true
}

// Replace swaps in a new list and resets the index.
func (c *Cycler[T]) Replace(items []T) {
	c.items = items
	c.index = -1
}

// Reset moves the index back before the first item.
func (c *Cycler[T]) Reset() { c.index = -1 }

func (c *Cycler[T]) Push(item T) { c.items = append(c.items, item) }

// PushFront inserts item at the head of the list. The index is reset.
func (c *Cycler[T]) PushFront(item T) {
	c.items = append([]T{item}, c.items...)
	c.index = -1
}

// Truncate drops items beyond the first n.
func (c *Cycler[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if len(c.items) > n {
		c.items = c.items[:n]
	}
	if c.index >= len(c.items) {
		c.index = len(c.items) - 1
	}
}

func (c *Cycler[T]) Clear() {
	c.items = nil
	c.index = -1
}

func (c *Cycler[T]) Len() int    { return len(c.items) }
func (c *Cycler[T]) Empty() bool { return len(c.items) == 0 }
func (c *Cycler[T]) Index() int  { return c.index }

// Items returns the underlying list. Callers must not modify it.
func (c *Cycler[T]) Items() []T { return c.items }

// Current returns the item at the index, if any.
func (c *Cycler[T]) Current() (T, bool) {
	var zero T
	if c.index < 0 || c.index >= len(c.items) {
		return zero, false
	}
	return c.items[c.index], true
}
