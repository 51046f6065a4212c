package context

import (
	"supermall/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the key for storing the authenticated session in echo.Context.
const KeySession ContextKey = "session"

// SetSession stores the authenticated session in echo.Context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the authenticated session, or nil when the request is anonymous.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(KeySession)).(*entity.Session); ok {
		return session
	}

	return nil
}
