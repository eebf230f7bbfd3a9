package database

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"crew-planner/internal/models"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		logrus.Infof("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			logrus.Info("connected to DB successfully")
			break
		}

		logrus.WithError(err).Warn("failed to connect to DB")
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		logrus.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	// миграции
	err = DB.AutoMigrate(
		&models.User{},
		&models.Worker{},
		&models.Project{},
		&models.Assignment{},
		&models.AuditLog{},
	)
	if err != nil {
		logrus.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin()
	seedDemoData()
}

// админ только из кода/конфига
func createDefaultAdmin() {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin@crew.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		logrus.WithError(err).Error("failed to check admin user")
		return
	}
	if count > 0 {
		// админ уже есть — ничего не делаем
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("failed to hash default admin password")
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		logrus.WithError(err).Error("failed to create default admin")
		return
	}

	logrus.Infof("created default admin user: %s", username)
}

// демо-данные: диспетчер, пара сотрудников и проект,
// чтобы матрица была не пустой при первом запуске
func seedDemoData() {
	var count int64
	if err := DB.Model(&models.User{}).
		Where("username = ?", "dispatcher@crew.local").
		Count(&count).Error; err == nil && count == 0 {

		hash, err := bcrypt.GenerateFromPassword([]byte("Dispatch123!"), bcrypt.DefaultCost)
		if err == nil {
			user := models.User{
				Username:     "dispatcher@crew.local",
				PasswordHash: string(hash),
				Role:         models.RoleDispatcher,
			}
			if err := DB.Create(&user).Error; err != nil {
				logrus.WithError(err).Error("failed to create seed dispatcher")
			} else {
				logrus.Info("created seed user: dispatcher@crew.local")
			}
		}
	}

	if err := DB.Model(&models.Worker{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	workers := []models.Worker{
		{FullName: "Иванов Пётр", City: "Казань", Position: "монтажник"},
		{FullName: "Сидоров Олег", City: "Казань", Position: "бригадир"},
		{FullName: "Кузнецов Андрей", City: "Пермь", Position: "монтажник"},
		{FullName: "Морозов Илья", Position: "стажёр"}, // без города
	}
	for i := range workers {
		if err := DB.Create(&workers[i]).Error; err != nil {
			logrus.WithError(err).Error("failed to create seed worker")
		}
	}

	project := models.Project{
		Number: "ПР-1",
		Name:   "Монтаж видеонаблюдения, склад №3",
		Status: models.ProjectActive,
	}
	if err := DB.Create(&project).Error; err != nil {
		logrus.WithError(err).Error("failed to create seed project")
	}

	logrus.Info("seeded demo workers and project")
}
