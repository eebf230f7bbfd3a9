package models

import (
	"time"

	"gorm.io/gorm"
)

// Assignment — назначение: сотрудник WorkerID работает на проекте ProjectID
// c StartDate по EndDate включительно. Даты без времени (полночь UTC).
type Assignment struct {
	gorm.Model

	WorkerID uint `gorm:"not null;index"`
	Worker   Worker

	ProjectID uint `gorm:"not null;index"`
	Project   Project

	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null;index"`

	CreatedBy uint // User.ID того, кто создал назначение
}

// Covers — покрывает ли назначение данный день
func (a Assignment) Covers(day time.Time) bool {
	return !day.Before(a.StartDate) && !day.After(a.EndDate)
}
