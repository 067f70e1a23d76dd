package availability

// HasConflict reports whether the candidate slot overlaps any of the busy
// intervals. Callers are expected to pre-filter busy intervals to blocking
// bookings only (pending or confirmed); cancelled and completed bookings must
// not appear here.
//
// Overlap is strict on the half-open semantics: a booking ending at 12:00
// does not conflict with a candidate starting at 12:00. Full containment,
// exact equality, and partial overlap are all caught by the same test.
func HasConflict(slot TimeInterval, busy []TimeInterval) bool {
	for _, b := range busy {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}
