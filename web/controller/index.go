package controller

import (
	"net/http"

	"github.com/nurcom/crm/config"
	"github.com/nurcom/crm/database/model"
	"github.com/nurcom/crm/logger"
	"github.com/nurcom/crm/web/service"
	"github.com/nurcom/crm/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterForm represents the registration request structure.
type RegisterForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// SubmitRequestForm carries a visitor's service request.
type SubmitRequestForm struct {
	Name    string `json:"name" form:"name"`
	Contact string `json:"contact" form:"contact"`
	Service string `json:"service" form:"service"`
	Message string `json:"message" form:"message"`
}

// ForgotPasswordForm carries a recovery request.
type ForgotPasswordForm struct {
	Email string `json:"email" form:"email"`
}

// IndexController handles the public routes: landing page, request
// submission, login, registration, logout and password recovery.
type IndexController struct {
	BaseController

	accountService service.AccountService
	requestService service.RequestService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.POST("/submit_request", a.submitRequest)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/logout", a.logout)
	g.GET("/forgot_password", a.forgotPasswordPage)
	g.POST("/forgot_password", a.forgotPassword)
}

// index renders the landing page.
func (a *IndexController) index(c *gin.Context) {
	html(c, "index.html", "Nurcom", gin.H{
		"is_logged_in": session.IsLogin(c),
	})
}

// submitRequest records a visitor's service request. The owner is the
// session email when logged in, the anonymous sentinel otherwise, and the
// visitor is redirected home either way.
func (a *IndexController) submitRequest(c *gin.Context) {
	var form SubmitRequestForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warning("invalid request form:", err)
		c.Redirect(http.StatusFound, "/")
		return
	}

	owner := model.AnonymousOwner
	if account := session.GetLoginAccount(c); account != nil {
		owner = account.Email
	}

	err := a.requestService.Submit(owner, form.Name, form.Contact, form.Service, form.Message)
	if err != nil {
		logger.Warning("submit request failed:", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func (a *IndexController) loginPage(c *gin.Context) {
	html(c, "login.html", "Login", nil)
}

// login authenticates the account and binds it to the session. Admins land
// on the admin panel, clients on their dashboard. Failures re-render the
// form without saying which field was wrong.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil || form.Email == "" || form.Password == "" {
		html(c, "login.html", "Login", gin.H{"error": "Invalid email or password"})
		return
	}

	account := a.accountService.CheckAccount(form.Email, form.Password)
	if account == nil {
		logger.Warningf("failed login for %q from %s", form.Email, getRemoteIp(c))
		html(c, "login.html", "Login", gin.H{"error": "Invalid email or password"})
		return
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	if err := session.SetLoginAccount(c, account); err != nil {
		logger.Warning("unable to save session:", err)
		html(c, "login.html", "Login", gin.H{"error": "Login failed, please try again"})
		return
	}

	logger.Infof("%s logged in from %s", account.Email, getRemoteIp(c))
	if account.Role == model.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin")
	} else {
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

func (a *IndexController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil)
}

// register creates a client account and logs it straight in. A taken email
// re-renders the form with a generic message.
func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil || form.Email == "" || form.Password == "" {
		html(c, "register.html", "Register", gin.H{"error": "Email and password are required"})
		return
	}

	account, err := a.accountService.Register(form.Email, form.Password)
	if err == service.ErrEmailTaken {
		html(c, "register.html", "Register", gin.H{"error": "Email is already taken"})
		return
	} else if err != nil {
		logger.Error("register failed:", err)
		html(c, "register.html", "Register", gin.H{"error": "Registration failed, please try again"})
		return
	}

	if err := session.SetLoginAccount(c, account); err != nil {
		logger.Warning("unable to save session:", err)
	}
	logger.Infof("%s registered from %s", account.Email, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/dashboard")
}

// logout clears the session unconditionally.
func (a *IndexController) logout(c *gin.Context) {
	if account := session.GetLoginAccount(c); account != nil {
		logger.Infof("%s logged out", account.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func (a *IndexController) forgotPasswordPage(c *gin.Context) {
	html(c, "forgot_password.html", "Password recovery", nil)
}

// forgotPassword starts the recovery flow: a tagged request lands in the
// admin queue and the admin resets the password manually later.
func (a *IndexController) forgotPassword(c *gin.Context) {
	var form ForgotPasswordForm
	if err := c.ShouldBind(&form); err != nil || form.Email == "" {
		html(c, "forgot_password.html", "Password recovery", gin.H{"error": "Email not found"})
		return
	}

	err := a.accountService.RequestPasswordReset(form.Email)
	if err == service.ErrEmailNotFound {
		html(c, "forgot_password.html", "Password recovery", gin.H{"error": "Email not found"})
		return
	} else if err != nil {
		logger.Error("password reset request failed:", err)
		html(c, "forgot_password.html", "Password recovery", gin.H{"error": "Request failed, please try again"})
		return
	}

	html(c, "forgot_password.html", "Password recovery", gin.H{
		"success": "Request sent! The admin will reset your password soon.",
	})
}
