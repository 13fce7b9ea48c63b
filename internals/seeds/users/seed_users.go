package users

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nguvan_backend/internals/features/users/user/model"
	"nguvan_backend/internals/helpers/logger"
)

type UserSeed struct {
	UserID        uuid.UUID `json:"user_id"`
	UserFirstName string    `json:"user_first_name"`
	UserLastName  string    `json:"user_last_name"`
	UserEmail     string    `json:"user_email"`
}

// SeedUsersFromJSON inserts demo students; existing emails are skipped.
func SeedUsersFromJSON(db *gorm.DB, l *logger.Logger, filePath string) error {
	l.Info("reading seed file", "path", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var data []UserSeed
	if err := sonic.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	for _, item := range data {
		email := strings.ToLower(strings.TrimSpace(item.UserEmail))
		var n int64
		if err := db.Model(&model.UserModel{}).Where("user_email = ?", email).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			l.Debug("user exists, skipping", "email", email)
			continue
		}

		record := model.UserModel{
			UserID:        item.UserID,
			UserFirstName: item.UserFirstName,
			UserLastName:  item.UserLastName,
			UserEmail:     email,
		}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("insert user %s: %w", email, err)
		}
		l.Info("user seeded", "user_id", record.UserID, "email", email)
	}
	return nil
}
