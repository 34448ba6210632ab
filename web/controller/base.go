// Package controller provides the HTTP handlers of the CRM panel: the
// public pages, the client portal, the admin panel and the chat API.
package controller

import (
	"net/http"

	"github.com/nurcom/crm/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authorization checks shared by all
// controllers.
type BaseController struct{}

// checkLogin verifies that a session exists, sending unauthenticated
// browsers to the login page and AJAX callers a 401 envelope.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "please log in first")
		} else {
			c.Redirect(http.StatusFound, "/login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}

// checkAdmin verifies the session carries the admin role. Anyone else lands
// on the login page rather than an error page, preserving the original
// panel's behavior.
func (a *BaseController) checkAdmin(c *gin.Context) {
	if !session.IsAdmin(c) {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}
