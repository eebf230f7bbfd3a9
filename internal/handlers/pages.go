package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// IndexPage отправляет вошедших сразу на график, остальным показывает заглавную
func IndexPage(c *gin.Context) {
	sess := sessions.Default(c)
	if _, ok := sess.Get("user_id").(uint); ok {
		c.Redirect(http.StatusFound, "/planning")
		return
	}

	c.HTML(http.StatusOK, "index.html", nil)
}
