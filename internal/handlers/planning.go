package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"crew-planner/internal/middleware"
	"crew-planner/internal/schedule"
	"crew-planner/internal/service"
)

// Planning — обработчики матрицы планирования. Вся работа с данными
// идёт через PlanningService, чтобы обработчики можно было тестировать
// на фейковых репозиториях.
type Planning struct {
	svc *service.PlanningService
}

func NewPlanning(svc *service.PlanningService) *Planning {
	return &Planning{svc: svc}
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.Day(t), nil
}

// refDate — опорная дата окна из query-параметра, по умолчанию сегодня
func refDate(c *gin.Context) time.Time {
	if s := c.Query("date"); s != "" {
		if d, err := parseDay(s); err == nil {
			return d
		}
	}
	return schedule.Day(time.Now())
}

//
// МАТРИЦА ПЛАНИРОВАНИЯ
//

func (h *Planning) GridPage(c *gin.Context) {
	ref := refDate(c)
	window := schedule.ComputeWindow(ref)
	start, end := window[0], window[len(window)-1]

	var warning, errMsg string

	// справочник не загрузился — показываем пустую матрицу с предупреждением
	workers, err := h.svc.Workers()
	if err != nil {
		warning = "Не удалось загрузить справочник сотрудников"
		workers = nil
	}

	assignments, err := h.svc.WindowAssignments(start, end)
	if err != nil {
		errMsg = "Не удалось загрузить назначения"
		assignments = nil
	}

	selectedCity := c.Query("city")
	if selectedCity == "" {
		selectedCity = schedule.CityAll
	}
	grid := schedule.BuildGrid(
		schedule.FilterWorkers(workers, selectedCity),
		window,
		assignments,
	)

	render(c, http.StatusOK, "planning.html", gin.H{
		"grid":         grid,
		"cities":       schedule.ListCities(workers),
		"SelectedCity": selectedCity,
		"RefDate":      ref.Format("2006-01-02"),
		"PrevDate":     schedule.PageBackward(ref).Format("2006-01-02"),
		"NextDate":     schedule.PageForward(ref).Format("2006-01-02"),
		"WindowStart":  start,
		"WindowEnd":    end,
		"warning":      warning,
		"error":        errMsg,
	})
}

//
// СОЗДАНИЕ НАЗНАЧЕНИЯ
//

// ShowNewAssignment — форма, предзаполненная сотрудником и днём
// из выбранной пустой клетки
func (h *Planning) ShowNewAssignment(c *gin.Context) {
	workerID, err := strconv.Atoi(c.Query("worker_id"))
	if err != nil || workerID <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID сотрудника")
		return
	}

	worker, err := h.svc.Worker(uint(workerID))
	if err != nil || worker == nil {
		c.String(http.StatusNotFound, "Сотрудник не найден")
		return
	}

	day := c.Query("date")
	if _, err := parseDay(day); err != nil {
		day = time.Now().Format("2006-01-02")
	}

	h.renderAssignmentForm(c, http.StatusOK, gin.H{
		"worker":    worker,
		"StartDate": day,
		"EndDate":   day,
		"RefDate":   c.Query("ref"),
		"error":     "",
	})
}

func (h *Planning) renderAssignmentForm(c *gin.Context, status int, data gin.H) {
	projects, err := h.svc.ActiveProjects()
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки проектов")
		return
	}
	data["projects"] = projects
	render(c, status, "assignment_new.html", data)
}

func (h *Planning) CreateAssignment(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	workerID, _ := strconv.Atoi(c.PostForm("worker_id"))
	projectID, _ := strconv.Atoi(c.PostForm("project_id"))
	ref := c.PostForm("ref")

	worker, err := h.svc.Worker(uint(workerID))
	if err != nil || worker == nil {
		c.String(http.StatusNotFound, "Сотрудник не найден")
		return
	}

	formErr := func(msg string) {
		h.renderAssignmentForm(c, http.StatusBadRequest, gin.H{
			"worker":    worker,
			"StartDate": c.PostForm("start_date"),
			"EndDate":   c.PostForm("end_date"),
			"RefDate":   ref,
			"error":     msg,
		})
	}

	start, err := parseDay(c.PostForm("start_date"))
	if err != nil {
		formErr("Неверная дата начала")
		return
	}
	end, err := parseDay(c.PostForm("end_date"))
	if err != nil {
		formErr("Неверная дата окончания")
		return
	}

	_, err = h.svc.CreateAssignment(u.CanManageSchedule(), u.ID, uint(workerID), uint(projectID), start, end)
	switch {
	case err == nil:
		// ок
	case errors.Is(err, service.ErrForbidden):
		c.String(http.StatusForbidden, err.Error())
		return
	default:
		// ошибка валидации — форма остаётся открытой для исправления
		formErr(err.Error())
		return
	}

	c.Redirect(http.StatusFound, planningURL(ref, c.PostForm("city")))
}

//
// УДАЛЕНИЕ НАЗНАЧЕНИЯ
//

// ShowDeleteAssignment — подтверждение с именем сотрудника и проектом
func (h *Planning) ShowDeleteAssignment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID")
		return
	}

	assignment, err := h.svc.Assignment(uint(id))
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки назначения")
		return
	}
	if assignment == nil {
		c.String(http.StatusNotFound, "Назначение не найдено")
		return
	}

	render(c, http.StatusOK, "assignment_delete.html", gin.H{
		"assignment": assignment,
		"RefDate":    c.Query("ref"),
	})
}

func (h *Planning) DeleteAssignment(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID")
		return
	}

	_, err = h.svc.DeleteAssignment(u.CanManageSchedule(), u.ID, uint(id))
	switch {
	case err == nil:
		// ок
	case errors.Is(err, service.ErrForbidden):
		c.String(http.StatusForbidden, err.Error())
		return
	case errors.Is(err, service.ErrAssignmentNotFound):
		c.String(http.StatusNotFound, err.Error())
		return
	default:
		c.String(http.StatusInternalServerError, "Ошибка удаления назначения")
		return
	}

	c.Redirect(http.StatusFound, planningURL(c.PostForm("ref"), c.PostForm("city")))
}

// planningURL — обратно на матрицу того же окна с тем же фильтром
func planningURL(ref, city string) string {
	url := "/planning"
	sep := "?"
	if ref != "" {
		url += sep + "date=" + ref
		sep = "&"
	}
	if city != "" {
		url += sep + "city=" + city
	}
	return url
}
