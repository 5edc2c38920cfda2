package controllers

import (
	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type URIID struct {
	ID string `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// parseID binds and parses the resource ID from the request URI.
func parseID(c *gin.Context) (uuid.UUID, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	id, err := uuid.Parse(uri.ID)
	if err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	return id, nil
}

// userID returns the ID of the authenticated user.
//
// It must only be called on routes behind the authentication
// middleware, which guarantees the value is set.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(auth.ContextUserID).(uuid.UUID)
}
