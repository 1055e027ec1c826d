package game

import "time"

type Counters struct {
	Correct int
	Wrong   int
}

func (c Counters) Total() int {
	return c.Correct + c.Wrong
}

// NotesPerMinute is the rate of correct notes over the given play time.
func (c Counters) NotesPerMinute(played time.Duration) float64 {
	if played <= 0 {
		return 0
	}
	return float64(c.Correct) / played.Minutes()
}
