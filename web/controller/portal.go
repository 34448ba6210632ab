package controller

import (
	"net/http"
	"net/url"

	"github.com/nurcom/crm/logger"
	"github.com/nurcom/crm/web/service"
	"github.com/nurcom/crm/web/session"

	"github.com/gin-gonic/gin"
)

// UpdatePasswordForm carries a self-service password change.
type UpdatePasswordForm struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// PortalController handles the logged-in client routes: the dashboard, the
// profile page and the self-service password change.
type PortalController struct {
	BaseController

	accountService service.AccountService
	requestService service.RequestService
}

// NewPortalController creates a new PortalController and initializes its routes.
func NewPortalController(g *gin.RouterGroup) *PortalController {
	a := &PortalController{}
	a.initRouter(g)
	return a
}

func (a *PortalController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/")
	g.Use(a.checkLogin)

	g.GET("/dashboard", a.dashboard)
	g.GET("/profile", a.profile)
	g.POST("/update_password", a.updatePassword)
}

// dashboard lists the requests owned by the logged-in account, and only
// those.
func (a *PortalController) dashboard(c *gin.Context) {
	account := session.GetLoginAccount(c)

	requests, err := a.requestService.ListForOwner(account.Email)
	if err != nil {
		logger.Warning("list requests failed:", err)
	}
	html(c, "dashboard.html", "Dashboard", gin.H{
		"user":     account.Email,
		"requests": requests,
	})
}

// profile shows the current account with an optional status message.
func (a *PortalController) profile(c *gin.Context) {
	account := session.GetLoginAccount(c)
	html(c, "profile.html", "Profile", gin.H{
		"user": account.Email,
		"msg":  c.Query("msg"),
	})
}

// updatePassword changes the account password after re-verifying the
// current one. Mismatched or wrongly confirmed input leaves the stored hash
// untouched.
func (a *PortalController) updatePassword(c *gin.Context) {
	account := session.GetLoginAccount(c)

	var form UpdatePasswordForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "profile.html", "Profile", gin.H{"user": account.Email, "msg": "Invalid form data"})
		return
	}

	err := a.accountService.UpdatePassword(account.Email, form.CurrentPassword, form.NewPassword, form.ConfirmPassword)
	switch err {
	case nil:
		logger.Infof("%s changed their password", account.Email)
		c.Redirect(http.StatusFound, "/profile?msg="+url.QueryEscape("Password changed successfully"))
	case service.ErrPasswordMismatch:
		html(c, "profile.html", "Profile", gin.H{"user": account.Email, "msg": "Passwords do not match"})
	case service.ErrWrongPassword:
		html(c, "profile.html", "Profile", gin.H{"user": account.Email, "msg": "Wrong current password"})
	default:
		logger.Error("update password failed:", err)
		html(c, "profile.html", "Profile", gin.H{"user": account.Email, "msg": "Password change failed, please try again"})
	}
}
