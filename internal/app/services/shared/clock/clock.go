package clock

import "time"

type Clock interface {
	Now() time.Time
}

type system struct{}

func NewSystem() Clock {
	return system{}
}

func (system) Now() time.Time {
	return time.Now()
}

type fixed struct {
	now time.Time
}

// NewFixed returns a Clock that always reports now. Used by tests.
func NewFixed(now time.Time) Clock {
	return fixed{now: now}
}

func (f fixed) Now() time.Time {
	return f.now
}
