package database

import (
	"github.com/sirupsen/logrus"

	"crew-planner/internal/models"
)

// CreateAuditLog пишет запись в журнал аудита.
// Сбой журнала не должен ронять саму операцию, поэтому ошибку только логируем.
func CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := DB.Create(&record).Error; err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"entity": entity,
			"action": action,
			"user":   userID,
		}).Error("failed to write audit log")
	}
}
