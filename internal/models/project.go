package models

import "gorm.io/gorm"

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectFinished ProjectStatus = "finished"
)

type Project struct {
	gorm.Model
	Number  string        `gorm:"size:50;not null"`  // номер/шифр проекта, например ПР-42
	Name    string        `gorm:"size:255;not null"` // название объекта
	Status  ProjectStatus `gorm:"type:varchar(20);not null"`
	Address string        `gorm:"size:255"`
	Notes   string        `gorm:"type:text"`

	Assignments []Assignment
}
