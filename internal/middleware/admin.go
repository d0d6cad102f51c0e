package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	AdminIDHeader = "X-Admin-ID"
	AdminKey      = "admin"
)

type AdminAuthorizer interface {
	Authorize(ctx context.Context, id string) (*domain.Admin, error)
}

// AdminAuth lets the request through only for an existing, active admin.
// The admin is stored in the context under AdminKey.
func AdminAuth(auth AdminAuthorizer) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(AdminIDHeader)
		if id == "" {
			c.Set("error", domain.ErrUnauthorized.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthorized.Error()})
			return
		}

		admin, err := auth.Authorize(c.Request.Context(), id)
		if err != nil {
			c.Set("error", err.Error())
			switch {
			case errors.Is(err, domain.ErrUnauthorized):
				c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": err.Error()})
			case errors.Is(err, domain.ErrAdminDisabled):
				c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": err.Error()})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
			}
			return
		}

		c.Set(AdminKey, admin)
		c.Next()
	}
}
