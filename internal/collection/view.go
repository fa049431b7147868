package collection

import (
	"time"

	"taskline/internal/model"
)

// Read-only derived views over the collection. Each call reflects the
// collection's current state; none of them mutate it.

// Incomplete returns the tasks with complete == false, in collection
// order.
func (c *Collection) Incomplete() []*model.Task {
	var out []*model.Task
	for _, t := range c.tasks {
		if !t.Complete {
			out = append(out, t)
		}
	}
	return out
}

// OnDay returns the tasks whose date falls on the given local calendar
// day, in collection order.
func (c *Collection) OnDay(day time.Time) []*model.Task {
	var out []*model.Task
	for _, t := range c.tasks {
		if t.SameDay(day) {
			out = append(out, t)
		}
	}
	return out
}

// GroupByDay partitions the tasks, in collection order, into contiguous
// runs sharing the same calendar day. Equal days separated by a
// different day form separate groups; this consecutive-run behavior is
// what display surfaces rely on.
func (c *Collection) GroupByDay() [][]*model.Task {
	var groups [][]*model.Task
	for _, t := range c.tasks {
		if n := len(groups); n > 0 {
			last := groups[n-1]
			if last[len(last)-1].SameDay(t.Date) {
				groups[n-1] = append(last, t)
				continue
			}
		}
		groups = append(groups, []*model.Task{t})
	}
	return groups
}

// visible reports whether the task at index i is selectable under the
// active visibility policy.
func (c *Collection) visible(i int, showCompleted bool) bool {
	return showCompleted || !c.tasks[i].Complete
}

// NextVisible returns the index of the first visible task strictly
// after cur. It does not wrap at the collection boundary. A negative
// cur scans from the start.
func (c *Collection) NextVisible(cur int, showCompleted bool) (int, bool) {
	for i := cur + 1; i < len(c.tasks); i++ {
		if c.visible(i, showCompleted) {
			return i, true
		}
	}
	return cur, false
}

// PrevVisible returns the index of the first visible task strictly
// before cur. It does not wrap at the collection boundary. A negative
// cur scans from the end.
func (c *Collection) PrevVisible(cur int, showCompleted bool) (int, bool) {
	if cur < 0 {
		cur = len(c.tasks)
	}
	for i := cur - 1; i >= 0; i-- {
		if c.visible(i, showCompleted) {
			return i, true
		}
	}
	return cur, false
}

// ClosestVisible returns the nearest selectable index to cur after a
// mutation hid or removed the current item: forward from cur to the
// end, then backward. ok is false when nothing is visible.
func (c *Collection) ClosestVisible(cur int, showCompleted bool) (int, bool) {
	if cur < 0 {
		cur = 0
	}
	for i := cur; i < len(c.tasks); i++ {
		if c.visible(i, showCompleted) {
			return i, true
		}
	}
	for i := min(cur, len(c.tasks)) - 1; i >= 0; i-- {
		if c.visible(i, showCompleted) {
			return i, true
		}
	}
	return -1, false
}
