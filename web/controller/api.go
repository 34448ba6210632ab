package controller

import (
	"net/http"

	"github.com/nurcom/crm/web/entity"
	"github.com/nurcom/crm/web/session"

	"github.com/gin-gonic/gin"
)

// ChatForm carries a chat message from the site widget.
type ChatForm struct {
	Message string `json:"message"`
}

// APIController handles the JSON API routes. The chat endpoint answers with
// a placeholder until an assistant backend is connected.
type APIController struct {
	BaseController
}

// NewAPIController creates a new APIController and initializes its routes.
func NewAPIController(g *gin.RouterGroup) *APIController {
	a := &APIController{}
	a.initRouter(g)
	return a
}

func (a *APIController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/api")

	g.POST("/chat", a.chat)
}

// chat replies to a logged-in user's chat message.
func (a *APIController) chat(c *gin.Context) {
	if !session.IsLogin(c) {
		c.JSON(http.StatusUnauthorized, entity.ChatReply{Response: "Please log in first."})
		return
	}

	var form ChatForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusOK, entity.ChatReply{Response: "Sorry, I could not read that. Try again?"})
		return
	}

	c.JSON(http.StatusOK, entity.ChatReply{Response: "I'm still being set up, but I'll be able to answer soon!"})
}
