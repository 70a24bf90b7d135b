package clock

import "time"

// Clock is the source of session timestamps and storage expiry
type Clock interface {
	Now() time.Time
}

// System reads the system clock in UTC
type System struct{}

// New returns the system clock
func New() System {
	return System{}
}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}
