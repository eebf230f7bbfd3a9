package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"crew-planner/internal/database"
	"crew-planner/internal/middleware"
	"crew-planner/internal/models"
)

//
// СПРАВОЧНИК ПРОЕКТОВ
//

func ListProjects(c *gin.Context) {
	statusStr := c.Query("status")

	dbq := database.DB.Order("number asc")
	if statusStr != "" {
		dbq = dbq.Where("status = ?", statusStr)
	}

	var projects []models.Project
	if err := dbq.Find(&projects).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки проектов")
		return
	}

	render(c, http.StatusOK, "projects_list.html", gin.H{
		"projects":     projects,
		"FilterStatus": statusStr,
	})
}

func ShowNewProject(c *gin.Context) {
	render(c, http.StatusOK, "projects_new.html", gin.H{"error": ""})
}

func CreateProject(c *gin.Context) {
	number := strings.TrimSpace(c.PostForm("number"))
	name := strings.TrimSpace(c.PostForm("name"))

	if number == "" {
		render(c, http.StatusBadRequest, "projects_new.html", gin.H{"error": "Укажите номер проекта"})
		return
	}
	if len(name) < 3 {
		render(c, http.StatusBadRequest, "projects_new.html", gin.H{"error": "Название должно быть не короче 3 символов"})
		return
	}

	project := models.Project{
		Number:  number,
		Name:    name,
		Status:  models.ProjectActive,
		Address: strings.TrimSpace(c.PostForm("address")),
		Notes:   strings.TrimSpace(c.PostForm("notes")),
	}

	if err := database.DB.Create(&project).Error; err != nil {
		render(c, http.StatusInternalServerError, "projects_new.html", gin.H{"error": "Ошибка сохранения проекта"})
		return
	}

	if u, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(u.ID, "project", project.ID, "create", "Создан проект: "+project.Number+" "+project.Name)
	}

	c.Redirect(http.StatusFound, "/projects")
}

func ShowEditProject(c *gin.Context) {
	id := c.Param("id")
	var project models.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		c.String(http.StatusNotFound, "Проект не найден")
		return
	}

	render(c, http.StatusOK, "projects_edit.html", gin.H{
		"project": project,
		"error":   "",
	})
}

func UpdateProject(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID")
		return
	}

	var project models.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		c.String(http.StatusNotFound, "Проект не найден")
		return
	}

	number := strings.TrimSpace(c.PostForm("number"))
	name := strings.TrimSpace(c.PostForm("name"))
	statusStr := c.PostForm("status")

	if number == "" || len(name) < 3 {
		render(c, http.StatusBadRequest, "projects_edit.html", gin.H{
			"project": project,
			"error":   "Проверьте номер и название проекта",
		})
		return
	}

	status := models.ProjectStatus(statusStr)
	switch status {
	case models.ProjectActive, models.ProjectFinished:
	default:
		render(c, http.StatusBadRequest, "projects_edit.html", gin.H{
			"project": project,
			"error":   "Некорректный статус",
		})
		return
	}

	project.Number = number
	project.Name = name
	project.Status = status
	project.Address = strings.TrimSpace(c.PostForm("address"))
	project.Notes = strings.TrimSpace(c.PostForm("notes"))

	if err := database.DB.Save(&project).Error; err != nil {
		render(c, http.StatusInternalServerError, "projects_edit.html", gin.H{
			"project": project,
			"error":   "Ошибка сохранения проекта",
		})
		return
	}

	if u, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(u.ID, "project", project.ID, "update", "Проект обновлён: "+project.Number)
	}

	c.Redirect(http.StatusFound, "/projects")
}
