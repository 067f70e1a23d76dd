package availability

// SlotStepMinutes is the grid step for candidate slots: slots start on the hour.
const SlotStepMinutes = 60

// DefaultDurationMinutes is used when the caller supplies a non-positive
// duration. Callers asking for "0 minutes" mean "the default", not an error.
const DefaultDurationMinutes = 60

// NormalizeDuration clamps non-positive durations to the default.
func NormalizeDuration(durationMinutes int) int {
	if durationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return durationMinutes
}

// SlotGenerator produces the candidate slot grid for one resource on one date.
type SlotGenerator struct {
	Step     int
	Fallback OperatingWindow
}

func NewSlotGenerator() *SlotGenerator {
	return &SlotGenerator{
		Step:     SlotStepMinutes,
		Fallback: DefaultOperatingWindow,
	}
}

// Generate emits every slot [t, t+duration) with t on the step grid and
// t+duration <= closing time, ascending by start time.
//
// A nil window means the resource has no configured policy for that weekday
// and falls back to the default window. A window with IsOpen == false means
// the resource is explicitly closed and yields no slots. A window shorter
// than the requested duration also yields no slots; that is an ordinary
// empty result, not an error.
func (g *SlotGenerator) Generate(window *OperatingWindow, durationMinutes int) []TimeInterval {
	if window == nil {
		window = &g.Fallback
	}
	if !window.IsOpen {
		return nil
	}

	duration := TimeOfDay(NormalizeDuration(durationMinutes))
	step := TimeOfDay(g.Step)

	var slots []TimeInterval
	for t := window.Opens; t+duration <= window.Closes; t += step {
		iv, err := NewTimeInterval(t, t+duration)
		if err != nil {
			// Out-of-range candidate from a misconfigured window; skip it.
			continue
		}
		slots = append(slots, iv)
	}
	return slots
}
