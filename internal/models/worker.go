package models

import "gorm.io/gorm"

type Worker struct {
	gorm.Model
	FullName string `gorm:"size:255;not null"` // ФИО сотрудника
	City     string `gorm:"size:100"`          // город / участок; пусто = не привязан
	Position string `gorm:"size:100"`          // монтажник, бригадир и т.п.
	Phone    string `gorm:"size:50"`
	Notes    string `gorm:"type:text"`

	Assignments []Assignment
}
