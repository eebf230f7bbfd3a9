package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crew-planner/internal/models"
	"crew-planner/internal/repository"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeWorkerRepo struct {
	workers []models.Worker
	err     error
}

func (f *fakeWorkerRepo) GetAll() ([]models.Worker, error) { return f.workers, f.err }
func (f *fakeWorkerRepo) GetByID(id uint) (*models.Worker, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.workers {
		if f.workers[i].ID == id {
			return &f.workers[i], nil
		}
	}
	return nil, nil
}
func (f *fakeWorkerRepo) Create(w *models.Worker) error { f.workers = append(f.workers, *w); return nil }
func (f *fakeWorkerRepo) Update(w *models.Worker) error { return nil }

type fakeProjectRepo struct {
	projects []models.Project
}

func (f *fakeProjectRepo) GetAll() ([]models.Project, error)    { return f.projects, nil }
func (f *fakeProjectRepo) GetActive() ([]models.Project, error) { return f.projects, nil }
func (f *fakeProjectRepo) GetByID(id uint) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			return &f.projects[i], nil
		}
	}
	return nil, nil
}
func (f *fakeProjectRepo) Create(p *models.Project) error { f.projects = append(f.projects, *p); return nil }
func (f *fakeProjectRepo) Update(p *models.Project) error { return nil }

type fakeAssignmentRepo struct {
	assignments []models.Assignment
	nextID      uint
	err         error
}

func (f *fakeAssignmentRepo) ListOverlapping(start, end time.Time) ([]models.Assignment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Assignment
	for _, a := range f.assignments {
		if !a.StartDate.After(end) && !a.EndDate.Before(start) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) GetByID(id uint) (*models.Assignment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			return &f.assignments[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAssignmentRepo) CountOverlappingForWorker(workerID uint, start, end time.Time) (int64, error) {
	var count int64
	for _, a := range f.assignments {
		if a.WorkerID == workerID && !a.StartDate.After(end) && !a.EndDate.Before(start) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAssignmentRepo) Create(a *models.Assignment) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	a.ID = f.nextID
	f.assignments = append(f.assignments, *a)
	return nil
}

func (f *fakeAssignmentRepo) Delete(id uint) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			f.assignments = append(f.assignments[:i], f.assignments[i+1:]...)
			return nil
		}
	}
	return repository.ErrAssignmentNotFound
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type auditRecord struct {
	userID   uint
	entity   string
	entityID uint
	action   string
	details  string
}

// auditLog копит записи аудита вместо настоящего журнала
type auditLog struct {
	records []auditRecord
}

func (l *auditLog) record(userID uint, entity string, entityID uint, action, details string) {
	l.records = append(l.records, auditRecord{userID, entity, entityID, action, details})
}

func testService() (*PlanningService, *fakeAssignmentRepo, *auditLog) {
	worker := models.Worker{FullName: "Йон", City: "Рейкьявик"}
	worker.ID = 1
	project := models.Project{Number: "ПР-42", Name: "Склад", Status: models.ProjectActive}
	project.ID = 10

	assignments := &fakeAssignmentRepo{}
	audit := &auditLog{}
	svc := NewPlanningService(
		&fakeWorkerRepo{workers: []models.Worker{worker}},
		&fakeProjectRepo{projects: []models.Project{project}},
		assignments,
		audit.record,
		quietLogger(),
	)
	return svc, assignments, audit
}

func TestCreateAssignment(t *testing.T) {
	svc, _, _ := testService()

	a, err := svc.CreateAssignment(true, 5, 1, 10, date(2024, 6, 15), date(2024, 6, 17))
	require.NoError(t, err)

	assert.NotZero(t, a.ID)
	assert.Equal(t, uint(1), a.WorkerID)
	assert.Equal(t, uint(10), a.ProjectID)
	assert.Equal(t, uint(5), a.CreatedBy)
	assert.Equal(t, "ПР-42", a.Project.Number)

	// после мутации окно перечитывается целиком — назначение в выборке
	window, err := svc.WindowAssignments(date(2024, 6, 10), date(2024, 6, 23))
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, a.ID, window[0].ID)
}

func TestCreateAssignmentValidation(t *testing.T) {
	svc, _, _ := testService()

	tests := []struct {
		name      string
		canManage bool
		workerID  uint
		projectID uint
		start     time.Time
		end       time.Time
		wantErr   error
	}{
		{"no capability", false, 1, 10, date(2024, 6, 15), date(2024, 6, 17), ErrForbidden},
		{"start after end", true, 1, 10, date(2024, 6, 18), date(2024, 6, 17), ErrInvalidRange},
		{"unknown worker", true, 99, 10, date(2024, 6, 15), date(2024, 6, 17), ErrWorkerNotFound},
		{"unknown project", true, 1, 99, date(2024, 6, 15), date(2024, 6, 17), ErrProjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateAssignment(tt.canManage, 5, tt.workerID, tt.projectID, tt.start, tt.end)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateAssignmentSingleDay(t *testing.T) {
	svc, _, _ := testService()
	a, err := svc.CreateAssignment(true, 5, 1, 10, date(2024, 6, 15), date(2024, 6, 15))
	require.NoError(t, err)
	assert.Equal(t, a.StartDate, a.EndDate)
}

func TestCreateAssignmentNormalizesTime(t *testing.T) {
	svc, _, _ := testService()
	start := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	end := time.Date(2024, 6, 17, 18, 0, 0, 0, time.UTC)

	a, err := svc.CreateAssignment(true, 5, 1, 10, start, end)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 15), a.StartDate)
	assert.Equal(t, date(2024, 6, 17), a.EndDate)
}

func TestCreateAssignmentAllowsOverlap(t *testing.T) {
	// двойное бронирование не запрещаем, только предупреждаем в логе
	svc, repo, _ := testService()

	_, err := svc.CreateAssignment(true, 5, 1, 10, date(2024, 6, 15), date(2024, 6, 17))
	require.NoError(t, err)
	_, err = svc.CreateAssignment(true, 5, 1, 10, date(2024, 6, 16), date(2024, 6, 18))
	require.NoError(t, err)

	assert.Len(t, repo.assignments, 2)
}

func TestDeleteAssignment(t *testing.T) {
	svc, _, _ := testService()

	a, err := svc.CreateAssignment(true, 5, 1, 10, date(2024, 6, 15), date(2024, 6, 17))
	require.NoError(t, err)

	deleted, err := svc.DeleteAssignment(true, 5, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, deleted.ID)

	// создали и удалили — выборка как до создания
	window, err := svc.WindowAssignments(date(2024, 6, 10), date(2024, 6, 23))
	require.NoError(t, err)
	assert.Empty(t, window)
}

func TestMutationsWriteAudit(t *testing.T) {
	// каждая мутация оставляет след в журнале — и со страниц, и из API,
	// потому что аудит пишет сам сервис
	svc, _, audit := testService()

	a, err := svc.CreateAssignment(true, 5, 1, 10, date(2024, 6, 15), date(2024, 6, 17))
	require.NoError(t, err)

	require.Len(t, audit.records, 1)
	created := audit.records[0]
	assert.Equal(t, uint(5), created.userID)
	assert.Equal(t, "assignment", created.entity)
	assert.Equal(t, a.ID, created.entityID)
	assert.Equal(t, "create", created.action)
	assert.Contains(t, created.details, "Йон")
	assert.Contains(t, created.details, "ПР-42")
	assert.Contains(t, created.details, "2024-06-15")

	_, err = svc.DeleteAssignment(true, 7, a.ID)
	require.NoError(t, err)

	require.Len(t, audit.records, 2)
	deleted := audit.records[1]
	assert.Equal(t, uint(7), deleted.userID)
	assert.Equal(t, a.ID, deleted.entityID)
	assert.Equal(t, "delete", deleted.action)
}

func TestFailedMutationsDoNotWriteAudit(t *testing.T) {
	svc, _, audit := testService()

	_, err := svc.CreateAssignment(true, 5, 99, 10, date(2024, 6, 15), date(2024, 6, 17))
	require.Error(t, err)

	_, err = svc.DeleteAssignment(true, 5, 777)
	require.Error(t, err)

	assert.Empty(t, audit.records)
}

func TestDeleteAssignmentErrors(t *testing.T) {
	svc, _, _ := testService()

	_, err := svc.DeleteAssignment(true, 5, 777)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)

	_, err = svc.DeleteAssignment(false, 5, 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestWindowAssignmentsOverlapBoundaries(t *testing.T) {
	svc, repo, _ := testService()
	winStart, winEnd := date(2024, 6, 10), date(2024, 6, 23)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		visible bool
	}{
		{"fully inside", date(2024, 6, 12), date(2024, 6, 14), true},
		{"starts before window", date(2024, 6, 5), date(2024, 6, 12), true},
		{"ends after window", date(2024, 6, 20), date(2024, 7, 1), true},
		{"spans whole window", date(2024, 6, 1), date(2024, 7, 1), true},
		{"touches first day", date(2024, 6, 5), date(2024, 6, 10), true},
		{"touches last day", date(2024, 6, 23), date(2024, 6, 30), true},
		{"ends day before", date(2024, 6, 5), date(2024, 6, 9), false},
		{"starts day after", date(2024, 6, 24), date(2024, 6, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.assignments = nil
			_, err := svc.CreateAssignment(true, 5, 1, 10, tt.start, tt.end)
			require.NoError(t, err)

			window, err := svc.WindowAssignments(winStart, winEnd)
			require.NoError(t, err)
			if tt.visible {
				assert.Len(t, window, 1)
			} else {
				assert.Empty(t, window)
			}
		})
	}
}

func TestWindowAssignmentsPropagatesError(t *testing.T) {
	svc, repo, _ := testService()
	repo.err = errors.New("connection refused")

	_, err := svc.WindowAssignments(date(2024, 6, 10), date(2024, 6, 23))
	assert.Error(t, err)
}
