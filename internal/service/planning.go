package service

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"crew-planner/internal/models"
	"crew-planner/internal/repository"
	"crew-planner/internal/schedule"
)

var (
	ErrForbidden          = errors.New("недостаточно прав для изменения графика")
	ErrInvalidRange       = errors.New("дата начала позже даты окончания")
	ErrWorkerNotFound     = errors.New("сотрудник не найден")
	ErrProjectNotFound    = errors.New("проект не найден")
	ErrAssignmentNotFound = repository.ErrAssignmentNotFound
)

// AuditFunc пишет запись в журнал аудита (database.CreateAuditLog в бою)
type AuditFunc func(userID uint, entity string, entityID uint, action, details string)

// PlanningService — оркестрация графика: выборка окна и мутации
// назначений. После успешной мутации обработчик перезагружает окно
// целиком, локально ничего не правим. Каждая мутация пишет аудит —
// и со страниц, и из JSON API.
type PlanningService struct {
	workers     repository.WorkerRepository
	projects    repository.ProjectRepository
	assignments repository.AssignmentRepository
	audit       AuditFunc
	logger      *logrus.Logger
}

func NewPlanningService(
	workers repository.WorkerRepository,
	projects repository.ProjectRepository,
	assignments repository.AssignmentRepository,
	audit AuditFunc,
	logger *logrus.Logger,
) *PlanningService {
	return &PlanningService{
		workers:     workers,
		projects:    projects,
		assignments: assignments,
		audit:       audit,
		logger:      logger,
	}
}

func (s *PlanningService) Workers() ([]models.Worker, error) {
	return s.workers.GetAll()
}

func (s *PlanningService) Worker(id uint) (*models.Worker, error) {
	return s.workers.GetByID(id)
}

// ActiveProjects — проекты для формы создания назначения
func (s *PlanningService) ActiveProjects() ([]models.Project, error) {
	return s.projects.GetActive()
}

// WindowAssignments — все назначения, пересекающиеся с окном [start, end]
func (s *PlanningService) WindowAssignments(start, end time.Time) ([]models.Assignment, error) {
	return s.assignments.ListOverlapping(schedule.Day(start), schedule.Day(end))
}

// CreateAssignment проверяет права и данные, затем создаёт назначение.
// Пересечение с другими назначениями сотрудника не запрещаем —
// только пишем предупреждение в лог (решение продукта, не баг).
func (s *PlanningService) CreateAssignment(canManage bool, createdBy, workerID, projectID uint, start, end time.Time) (*models.Assignment, error) {
	if !canManage {
		return nil, ErrForbidden
	}

	start = schedule.Day(start)
	end = schedule.Day(end)
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	worker, err := s.workers.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}

	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if overlaps, err := s.assignments.CountOverlappingForWorker(workerID, start, end); err == nil && overlaps > 0 {
		s.logger.WithFields(logrus.Fields{
			"worker_id": workerID,
			"start":     start.Format("2006-01-02"),
			"end":       end.Format("2006-01-02"),
			"overlaps":  overlaps,
		}).Warn("Creating overlapping assignment for worker")
	}

	assignment := &models.Assignment{
		WorkerID:  workerID,
		ProjectID: projectID,
		StartDate: start,
		EndDate:   end,
		CreatedBy: createdBy,
	}
	if err := s.assignments.Create(assignment); err != nil {
		return nil, err
	}

	assignment.Worker = *worker
	assignment.Project = *project

	s.audit(createdBy, "assignment", assignment.ID, "create",
		"Назначение: "+worker.FullName+" → "+project.Number+" "+project.Name+
			" ("+start.Format("2006-01-02")+" — "+end.Format("2006-01-02")+")")

	return assignment, nil
}

// DeleteAssignment удаляет назначение и возвращает удалённую запись.
// Несуществующий id — ошибка, не тихий успех.
func (s *PlanningService) DeleteAssignment(canManage bool, actorID, id uint) (*models.Assignment, error) {
	if !canManage {
		return nil, ErrForbidden
	}

	assignment, err := s.assignments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}

	if err := s.assignments.Delete(id); err != nil {
		return nil, err
	}

	s.audit(actorID, "assignment", assignment.ID, "delete",
		"Снято назначение: "+assignment.Worker.FullName+" → "+assignment.Project.Number)

	return assignment, nil
}

// Assignment — одно назначение со связями (для страницы подтверждения удаления)
func (s *PlanningService) Assignment(id uint) (*models.Assignment, error) {
	return s.assignments.GetByID(id)
}
