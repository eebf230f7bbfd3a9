package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crew-planner/internal/database"
	"crew-planner/internal/middleware"
	"crew-planner/internal/models"
)

func ListAuditLogs(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	if u.Role != models.RoleAdmin && u.Role != models.RoleViewer {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	var logs []models.AuditLog
	database.DB.
		Preload("User").
		Order("created_at desc").
		Limit(200).
		Find(&logs)

	render(c, http.StatusOK, "audit_list.html", gin.H{
		"logs": logs,
	})
}
