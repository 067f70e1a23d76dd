package availability

import "time"

// OperatingWindow describes when a resource accepts bookings on one weekday.
// Opens and Closes are only meaningful when IsOpen is true.
type OperatingWindow struct {
	IsOpen bool
	Opens  TimeOfDay
	Closes TimeOfDay
}

// DefaultOperatingWindow is used for resources without an explicit
// operating-hours policy, so that unconfigured resources still produce a
// slot grid instead of disappearing from search results.
var DefaultOperatingWindow = OperatingWindow{
	IsOpen: true,
	Opens:  6 * 60,  // 06:00
	Closes: 23 * 60, // 23:00
}

// ParseDate parses an ISO YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
