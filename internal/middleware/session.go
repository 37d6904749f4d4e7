package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
)

const (
	HeaderXSessionID = "X-Session-ID"
	ContextSessionID = "session_id"
)

// SessionStarter resolves a client's session, starting a fresh one when the
// id is empty or unknown.
type SessionStarter interface {
	Ensure(ctx context.Context, id string) (*model.Session, bool, error)
}

// Session attaches the caller's portal session to the context and echoes
// its id so the client can send it back on the next request.
func Session(starter SessionStarter) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _, err := starter.Ensure(c.Request.Context(), c.GetHeader(HeaderXSessionID))
		if err != nil {
			httputil.RespondWithError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextSessionID, sess.ID)
		c.Header(HeaderXSessionID, sess.ID)
		c.Next()
	}
}

// SessionID returns the session attached by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
