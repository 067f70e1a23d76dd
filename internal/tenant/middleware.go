package tenant

import (
	"log"

	"github.com/gin-gonic/gin"
)

const contextKey = "tenantVendor"

// Scoped is a Gin middleware that resolves the request Host into a vendor
// scope. Resolution never blocks the request: an unknown subdomain means the
// marketplace-wide view, and a resolver failure is logged and ignored so the
// public endpoints stay up when the vendor lookup is degraded.
func Scoped(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendor, err := resolver.Resolve(c.Request.Context(), c.Request.Host)
		if err != nil {
			log.Printf("tenant resolution failed for host %q: %v", c.Request.Host, err)
		} else if vendor != nil {
			c.Set(contextKey, vendor)
		}
		c.Next()
	}
}

// VendorFromContext returns the resolved vendor scope, or nil for
// marketplace-wide requests.
func VendorFromContext(c *gin.Context) *Vendor {
	if v, ok := c.Get(contextKey); ok {
		if vendor, ok := v.(*Vendor); ok {
			return vendor
		}
	}
	return nil
}
