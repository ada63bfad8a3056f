package component

// TimerComponent is a seconds-remaining countdown advanced by the simulation step
// Repeating timers re-arm by adding Period on expiry so long steps keep cadence
type TimerComponent struct {
	Remaining float64
	Period    float64
	Repeating bool
	Done      bool // One-shot already reported expiry
}

// NewRepeatingTimer returns a timer that first expires after period
func NewRepeatingTimer(period float64) TimerComponent {
	return TimerComponent{Remaining: period, Period: period, Repeating: true}
}

// NewOnceTimer returns a one-shot timer
func NewOnceTimer(duration float64) TimerComponent {
	return TimerComponent{Remaining: duration, Period: duration}
}

// Tick advances by dt and reports whether the timer expired during this step
// A one-shot timer reports expiry once and then stays at zero
func (t *TimerComponent) Tick(dt float64) bool {
	if t.Done {
		return false
	}
	t.Remaining -= dt
	if t.Remaining > 0 {
		return false
	}
	if t.Repeating && t.Period > 0 {
		t.Remaining += t.Period
		// Catch up if dt spanned several periods, expiry is still reported once
		for t.Remaining <= 0 {
			t.Remaining += t.Period
		}
	} else {
		t.Remaining = 0
		t.Done = true
	}
	return true
}

// Reset re-arms the timer to its full period
func (t *TimerComponent) Reset() {
	t.Remaining = t.Period
	t.Done = false
}

// Expired reports whether a one-shot timer has run out
func (t *TimerComponent) Expired() bool {
	return t.Done
}
