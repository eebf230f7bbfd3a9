package repository

import (
	"errors"

	"gorm.io/gorm"

	"crew-planner/internal/models"
)

type WorkerRepository interface {
	GetAll() ([]models.Worker, error)
	GetByID(id uint) (*models.Worker, error)
	Create(worker *models.Worker) error
	Update(worker *models.Worker) error
}

type GormWorkerRepository struct {
	db *gorm.DB
}

func NewGormWorkerRepository(db *gorm.DB) WorkerRepository {
	return &GormWorkerRepository{db: db}
}

func (r *GormWorkerRepository) GetAll() ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.Order("full_name asc").Find(&workers).Error
	return workers, err
}

func (r *GormWorkerRepository) GetByID(id uint) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.First(&worker, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *GormWorkerRepository) Create(worker *models.Worker) error {
	return r.db.Create(worker).Error
}

func (r *GormWorkerRepository) Update(worker *models.Worker) error {
	return r.db.Save(worker).Error
}
