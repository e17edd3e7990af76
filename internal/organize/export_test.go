package organize

import "time"

// SetNowForTests overrides the clock used for collision timestamps.
func (o *Organizer) SetNowForTests(now func() time.Time) {
	o.now = now
}
