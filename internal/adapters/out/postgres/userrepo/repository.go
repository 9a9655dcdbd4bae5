// Package userrepo stores the role attached to each email address.
package userrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserDTO struct {
	Email string `gorm:"type:varchar(320);primaryKey"`
	Role  string `gorm:"type:varchar(16);not null;default:'user'"`
}

func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) GetRole(ctx context.Context, email kernel.Email) (string, error) {
	if err := email.Validate(); err != nil {
		return "", err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "email = ?", email.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.RoleUser, nil
	}
	if err != nil {
		return "", errs.NewPersistenceError("get user role", err)
	}
	if dto.Role == "" {
		return ports.RoleUser, nil
	}
	return dto.Role, nil
}

func (r *GormUserRepository) SetRole(ctx context.Context, email kernel.Email, role string) error {
	if err := email.Validate(); err != nil {
		return err
	}
	switch role {
	case ports.RoleUser, ports.RoleRider, ports.RoleAdmin:
	default:
		return errs.NewValueIsInvalidError("role")
	}

	dto := UserDTO{Email: email.String(), Role: role}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(&dto).Error
	if err != nil {
		return errs.NewPersistenceError("set user role", err)
	}
	return nil
}
