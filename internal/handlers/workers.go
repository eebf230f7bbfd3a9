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
// СПРАВОЧНИК СОТРУДНИКОВ
//

func ListWorkers(c *gin.Context) {
	var workers []models.Worker
	if err := database.DB.Order("full_name asc").Find(&workers).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки сотрудников")
		return
	}

	render(c, http.StatusOK, "workers_list.html", gin.H{
		"workers": workers,
	})
}

func ShowNewWorker(c *gin.Context) {
	render(c, http.StatusOK, "workers_new.html", gin.H{"error": ""})
}

// workerCity нормализует город: в старых формах поле называлось sector,
// в новых city. Принимаем оба, храним в одной колонке.
func workerCity(c *gin.Context) string {
	city := strings.TrimSpace(c.PostForm("city"))
	if city == "" {
		city = strings.TrimSpace(c.PostForm("sector"))
	}
	return city
}

func CreateWorker(c *gin.Context) {
	fullName := strings.TrimSpace(c.PostForm("full_name"))
	if len(fullName) < 3 {
		render(c, http.StatusBadRequest, "workers_new.html", gin.H{"error": "ФИО должно быть не короче 3 символов"})
		return
	}

	worker := models.Worker{
		FullName: fullName,
		City:     workerCity(c),
		Position: strings.TrimSpace(c.PostForm("position")),
		Phone:    strings.TrimSpace(c.PostForm("phone")),
		Notes:    strings.TrimSpace(c.PostForm("notes")),
	}

	if err := database.DB.Create(&worker).Error; err != nil {
		render(c, http.StatusInternalServerError, "workers_new.html", gin.H{"error": "Ошибка сохранения сотрудника"})
		return
	}

	if u, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(u.ID, "worker", worker.ID, "create", "Добавлен сотрудник: "+worker.FullName)
	}

	c.Redirect(http.StatusFound, "/workers")
}

func ShowEditWorker(c *gin.Context) {
	id := c.Param("id")
	var worker models.Worker
	if err := database.DB.First(&worker, id).Error; err != nil {
		c.String(http.StatusNotFound, "Сотрудник не найден")
		return
	}

	render(c, http.StatusOK, "workers_edit.html", gin.H{
		"worker": worker,
		"error":  "",
	})
}

func UpdateWorker(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID")
		return
	}

	var worker models.Worker
	if err := database.DB.First(&worker, id).Error; err != nil {
		c.String(http.StatusNotFound, "Сотрудник не найден")
		return
	}

	fullName := strings.TrimSpace(c.PostForm("full_name"))
	if len(fullName) < 3 {
		render(c, http.StatusBadRequest, "workers_edit.html", gin.H{
			"worker": worker,
			"error":  "ФИО должно быть не короче 3 символов",
		})
		return
	}

	worker.FullName = fullName
	worker.City = workerCity(c)
	worker.Position = strings.TrimSpace(c.PostForm("position"))
	worker.Phone = strings.TrimSpace(c.PostForm("phone"))
	worker.Notes = strings.TrimSpace(c.PostForm("notes"))

	if err := database.DB.Save(&worker).Error; err != nil {
		render(c, http.StatusInternalServerError, "workers_edit.html", gin.H{
			"worker": worker,
			"error":  "Ошибка сохранения сотрудника",
		})
		return
	}

	if u, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(u.ID, "worker", worker.ID, "update", "Сотрудник обновлён: "+worker.FullName)
	}

	c.Redirect(http.StatusFound, "/workers")
}
