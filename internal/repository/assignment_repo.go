package repository

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crew-planner/internal/models"
)

// ErrAssignmentNotFound — назначения с таким id нет (или его уже удалили)
var ErrAssignmentNotFound = errors.New("назначение не найдено")

type AssignmentRepository interface {
	// ListOverlapping возвращает все назначения, чей период пересекается
	// с [start, end] (границы включительно, частичное пересечение считается)
	ListOverlapping(start, end time.Time) ([]models.Assignment, error)
	GetByID(id uint) (*models.Assignment, error)
	CountOverlappingForWorker(workerID uint, start, end time.Time) (int64, error)
	Create(assignment *models.Assignment) error
	Delete(id uint) error
}

type GormAssignmentRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormAssignmentRepository(db *gorm.DB, logger *logrus.Logger) AssignmentRepository {
	return &GormAssignmentRepository{db: db, logger: logger}
}

func (r *GormAssignmentRepository) ListOverlapping(start, end time.Time) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Preload("Project").
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date asc").
		Find(&assignments).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to list assignments for window")
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"start": start.Format("2006-01-02"),
		"end":   end.Format("2006-01-02"),
		"count": len(assignments),
	}).Debug("Listed assignments for window")

	return assignments, nil
}

func (r *GormAssignmentRepository) GetByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.Preload("Worker").Preload("Project").First(&assignment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to get assignment by ID")
		return nil, err
	}
	return &assignment, nil
}

// CountOverlappingForWorker — сколько назначений сотрудника пересекается
// с периодом. Нужно для предупреждения о двойном бронировании.
func (r *GormAssignmentRepository) CountOverlappingForWorker(workerID uint, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).
		Where("worker_id = ? AND start_date <= ? AND end_date >= ?", workerID, end, start).
		Count(&count).Error
	return count, err
}

func (r *GormAssignmentRepository) Create(assignment *models.Assignment) error {
	if err := r.db.Create(assignment).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create assignment")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"id":         assignment.ID,
		"worker_id":  assignment.WorkerID,
		"project_id": assignment.ProjectID,
		"start":      assignment.StartDate.Format("2006-01-02"),
		"end":        assignment.EndDate.Format("2006-01-02"),
	}).Info("Assignment created")

	return nil
}

func (r *GormAssignmentRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Assignment{}, id)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete assignment")
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.WithField("id", id).Warn("Assignment not found for deletion")
		return ErrAssignmentNotFound
	}

	r.logger.WithField("id", id).Info("Assignment deleted")
	return nil
}
