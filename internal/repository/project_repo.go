package repository

import (
	"errors"

	"gorm.io/gorm"

	"crew-planner/internal/models"
)

type ProjectRepository interface {
	GetAll() ([]models.Project, error)
	GetActive() ([]models.Project, error)
	GetByID(id uint) (*models.Project, error)
	Create(project *models.Project) error
	Update(project *models.Project) error
}

type GormProjectRepository struct {
	db *gorm.DB
}

func NewGormProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("number asc").Find(&projects).Error
	return projects, err
}

// GetActive — проекты, на которые ещё можно назначать людей
func (r *GormProjectRepository) GetActive() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("status = ?", models.ProjectActive).
		Order("number asc").
		Find(&projects).Error
	return projects, err
}

func (r *GormProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}
