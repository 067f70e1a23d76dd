package tenant

import "time"

// Vendor is the business whose resources are visible in a subdomain-scoped
// request (e.g. acme.courtside.app shows only Acme's courts).
type Vendor struct {
	ID        string
	Name      string
	Subdomain string
	CreatedAt time.Time
}
