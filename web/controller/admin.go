package controller

import (
	"net/http"
	"strconv"

	"github.com/nurcom/crm/logger"
	"github.com/nurcom/crm/web/service"

	"github.com/gin-gonic/gin"
)

// AdminController handles the admin-only routes: triaging all requests,
// listing client accounts and resetting their passwords.
type AdminController struct {
	BaseController

	accountService service.AccountService
	requestService service.RequestService
}

// NewAdminController creates a new AdminController and initializes its routes.
func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/admin")
	g.Use(a.checkAdmin)

	g.GET("", a.panel)
	g.POST("/reset_user/:email", a.resetUser)
	g.POST("/update_status/:id", a.updateStatus)
}

// panel shows every request, most recent first, plus all client accounts.
func (a *AdminController) panel(c *gin.Context) {
	requests, err := a.requestService.ListAll()
	if err != nil {
		logger.Warning("list all requests failed:", err)
	}
	accounts, err := a.accountService.ListClients()
	if err != nil {
		logger.Warning("list accounts failed:", err)
	}

	html(c, "admin.html", "Admin panel", gin.H{
		"requests": requests,
		"users":    accounts,
	})
}

// resetUser resets the target account's password to the fixed default. A
// nonexistent email is a silent no-op.
func (a *AdminController) resetUser(c *gin.Context) {
	email := c.Param("email")
	if err := a.accountService.ResetPassword(email); err != nil {
		logger.Error("reset password failed:", err)
	}
	c.Redirect(http.StatusFound, "/admin")
}

// updateStatus overwrites a request's status with whatever the admin chose.
// A nonexistent id is a silent no-op.
func (a *AdminController) updateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		logger.Warning("invalid request id:", c.Param("id"))
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	status := c.PostForm("status")
	if err := a.requestService.UpdateStatus(id, status); err != nil {
		logger.Error("update status failed:", err)
	}
	c.Redirect(http.StatusFound, "/admin")
}
