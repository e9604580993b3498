package handlers

import (
	"net/http"
	"strings"

	"stockcast/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	identityCtxKey     = "identity"
	errMsgMissingToken = "Missing token"
	errMsgInvalidToken = "Invalid token"
)

// identityMiddleware enforces a valid Bearer token on protected routes.
// An absent or malformed header is 401; a token that fails verification
// (forged, expired) is 403. No upstream call happens past a failure here.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errMsgMissingToken})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errMsgMissingToken})
		return
	}

	ident, err := h.services.ParseToken(parts[1])
	if err != nil {
		if h.log != nil {
			h.log.Infow("token_rejected", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": errMsgInvalidToken})
		return
	}

	c.Set(identityCtxKey, ident)
	c.Next()
}

// currentIdentity returns the identity stored by the middleware.
func currentIdentity(c *gin.Context) *service.Identity {
	v, ok := c.Get(identityCtxKey)
	if !ok {
		return nil
	}
	ident, _ := v.(*service.Identity)
	return ident
}

// currentUsername is a convenience for audit fields.
func currentUsername(c *gin.Context) string {
	if ident := currentIdentity(c); ident != nil {
		return ident.Username
	}
	return ""
}
