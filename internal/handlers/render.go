package handlers

import (
	"crew-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render — обёртка над c.HTML, прокидывает текущего пользователя во все шаблоны
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if u, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = u
		data["CurrentUsername"] = u.Username
		data["CurrentUserRole"] = u.Role
		data["CanManage"] = u.CanManageSchedule()
	}

	c.HTML(status, tmpl, data)
}
