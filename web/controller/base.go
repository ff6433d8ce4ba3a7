// Package controller provides the HTTP request handlers for the booklib
// catalog: account entry points, the welcome page and book management.
package controller

import (
	"net/http"

	"booklib/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers,
// including the login gate.
type BaseController struct{}

// checkLogin aborts anonymous requests with a redirect to the entry
// page. The session id is taken at face value; it is not re-validated
// against the users table.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		c.Redirect(http.StatusSeeOther, "/")
		c.Abort()
	} else {
		c.Next()
	}
}
