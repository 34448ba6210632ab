// Package session binds an authenticated account to the browser's cookie
// session and exposes helpers for reading that binding back.
package session

import (
	"encoding/gob"

	"github.com/nurcom/crm/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginAccount = "LOGIN_ACCOUNT"

// SessionName is the cookie carrying the session id.
const SessionName = "nurcrm"

func init() {
	gob.Register(model.Account{})
}

func SetLoginAccount(c *gin.Context, account *model.Account) error {
	s := sessions.Default(c)
	s.Set(loginAccount, *account)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginAccount(c *gin.Context) *model.Account {
	s := sessions.Default(c)
	if obj := s.Get(loginAccount); obj != nil {
		if account, ok := obj.(model.Account); ok {
			return &account
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginAccount(c) != nil
}

func IsAdmin(c *gin.Context) bool {
	account := GetLoginAccount(c)
	return account != nil && account.Role == model.RoleAdmin
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie(SessionName, "", -1, "/", "", false, true)
	return nil
}
