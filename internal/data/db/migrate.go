package db

import (
	types "github.com/yungbote/kanban-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&types.User{},
		&types.Tag{},
		&types.WorkItem{},
	)
}
