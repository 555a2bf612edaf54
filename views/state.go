package views

import "time"

// Tick is a custom vaxis event posted by the refresh schedule. It is sent
// from a background goroutine via PostEvent; the live reading is replaced
// when the event loop handles it.
type Tick struct {
	At time.Time
}
