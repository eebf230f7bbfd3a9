package server

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"crew-planner/internal/config"
	"crew-planner/internal/handlers"
	"crew-planner/internal/middleware"
	"crew-planner/internal/models"
)

// подписи дней недели для шапки матрицы
var weekdayShort = map[time.Weekday]string{
	time.Monday:    "пн",
	time.Tuesday:   "вт",
	time.Wednesday: "ср",
	time.Thursday:  "чт",
	time.Friday:    "пт",
	time.Saturday:  "сб",
	time.Sunday:    "вс",
}

func NewRouter(cfg *config.Config, planning *handlers.Planning) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"eq":        func(a, b interface{}) bool { return a == b },
		"shortDate": func(t time.Time) string { return t.Format("02.01") },
		"isoDate":   func(t time.Time) string { return t.Format("2006-01-02") },
		"weekday":   func(t time.Time) string { return weekdayShort[t.Weekday()] },
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("crew_session", store))

	r.Use(middleware.InjectUser())

	// ГЛАВНАЯ
	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// МАТРИЦА ПЛАНИРОВАНИЯ
	auth.GET("/planning", planning.GridPage)

	// создание и снятие назначений — только админ и диспетчер
	auth.GET("/planning/assignments/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleDispatcher),
		planning.ShowNewAssignment,
	)
	auth.POST("/planning/assignments",
		middleware.RequireRole(models.RoleAdmin, models.RoleDispatcher),
		planning.CreateAssignment,
	)
	auth.GET("/planning/assignments/:id/delete",
		middleware.RequireRole(models.RoleAdmin, models.RoleDispatcher),
		planning.ShowDeleteAssignment,
	)
	auth.POST("/planning/assignments/:id/delete",
		middleware.RequireRole(models.RoleAdmin, models.RoleDispatcher),
		planning.DeleteAssignment,
	)

	// СОТРУДНИКИ
	auth.GET("/workers", handlers.ListWorkers)
	auth.GET("/workers/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleDispatcher),
		handlers.ShowNewWorker,
	)
	auth.POST("/workers/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleDispatcher),
		handlers.CreateWorker,
	)
	auth.GET("/workers/:id/edit",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowEditWorker,
	)
	auth.POST("/workers/:id/edit",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdateWorker,
	)

	// ПРОЕКТЫ
	auth.GET("/projects", handlers.ListProjects)
	auth.GET("/projects/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleDispatcher),
		handlers.ShowNewProject,
	)
	auth.POST("/projects/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleDispatcher),
		handlers.CreateProject,
	)
	auth.GET("/projects/:id/edit",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowEditProject,
	)
	auth.POST("/projects/:id/edit",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdateProject,
	)

	// АУДИТ
	auth.GET("/audit",
		middleware.RequireRole(models.RoleAdmin, models.RoleViewer),
		handlers.ListAuditLogs,
	)

	// JSON API графика; права на мутации проверяет сервис
	api := r.Group("/api")
	api.Use(middleware.RequireAuthAPI())
	api.GET("/workers", planning.APIListWorkers)
	api.GET("/assignments", planning.APIListAssignments)
	api.POST("/assignments", planning.APICreateAssignment)
	api.DELETE("/assignments/:id", planning.APIDeleteAssignment)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
