package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crew-planner/internal/middleware"
	"crew-planner/internal/models"
	"crew-planner/internal/service"
)

//
// JSON API ДЛЯ ВНЕШНИХ ПОТРЕБИТЕЛЕЙ ГРАФИКА
//

type workerDTO struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	City     string `json:"city,omitempty"`
}

type assignmentDTO struct {
	ID            uint   `json:"id"`
	WorkerID      uint   `json:"worker_id"`
	ProjectID     uint   `json:"project_id"`
	ProjectName   string `json:"project_name"`
	ProjectNumber string `json:"project_number"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}

func toAssignmentDTO(a models.Assignment) assignmentDTO {
	return assignmentDTO{
		ID:            a.ID,
		WorkerID:      a.WorkerID,
		ProjectID:     a.ProjectID,
		ProjectName:   a.Project.Name,
		ProjectNumber: a.Project.Number,
		StartDate:     a.StartDate.Format("2006-01-02"),
		EndDate:       a.EndDate.Format("2006-01-02"),
	}
}

// apiError переводит ошибки сервиса в HTTP-статусы
func apiError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "внутренняя ошибка"

	switch {
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		msg = err.Error()
	case errors.Is(err, service.ErrInvalidRange):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, service.ErrWorkerNotFound),
		errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrAssignmentNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	}

	c.JSON(status, gin.H{"error": msg})
}

// APIListWorkers — GET /api/workers
func (h *Planning) APIListWorkers(c *gin.Context) {
	workers, err := h.svc.Workers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось загрузить сотрудников"})
		return
	}

	out := make([]workerDTO, 0, len(workers))
	for _, w := range workers {
		out = append(out, workerDTO{ID: w.ID, FullName: w.FullName, City: w.City})
	}
	c.JSON(http.StatusOK, out)
}

// APIListAssignments — GET /api/assignments?start=&end=
// Возвращает все назначения, пересекающиеся с [start, end] включительно.
func (h *Planning) APIListAssignments(c *gin.Context) {
	start, err := parseDay(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "неверный параметр start, ожидается YYYY-MM-DD"})
		return
	}
	end, err := parseDay(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "неверный параметр end, ожидается YYYY-MM-DD"})
		return
	}
	if start.After(end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidRange.Error()})
		return
	}

	assignments, err := h.svc.WindowAssignments(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось загрузить назначения"})
		return
	}

	out := make([]assignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, toAssignmentDTO(a))
	}
	c.JSON(http.StatusOK, out)
}

type createAssignmentRequest struct {
	WorkerID  uint   `json:"worker_id"`
	ProjectID uint   `json:"project_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// APICreateAssignment — POST /api/assignments
func (h *Planning) APICreateAssignment(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var req createAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	start, err := parseDay(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "неверная дата start_date"})
		return
	}
	end, err := parseDay(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "неверная дата end_date"})
		return
	}

	assignment, err := h.svc.CreateAssignment(u.CanManageSchedule(), u.ID, req.WorkerID, req.ProjectID, start, end)
	if err != nil {
		apiError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAssignmentDTO(*assignment))
}

// APIDeleteAssignment — DELETE /api/assignments/:id
func (h *Planning) APIDeleteAssignment(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный id"})
		return
	}

	if _, err := h.svc.DeleteAssignment(u.CanManageSchedule(), u.ID, uint(id)); err != nil {
		apiError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
