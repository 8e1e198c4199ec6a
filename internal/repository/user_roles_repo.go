package repository

import (
	"Viewy/internal/model"
	"context"

	"gorm.io/gorm"
)

type UserRolesRepo interface {
	GetUserRoles(ctx context.Context, userId uint64) ([]*model.Role, error)
	GetUserHasRoleName(ctx context.Context, userId uint64, roleName string) (bool, error)
}

type UserRolesRepoImpl struct {
	db *gorm.DB
}

func NewUserRolesRepo(db *gorm.DB) UserRolesRepo {
	return &UserRolesRepoImpl{db: db}
}

func (s *UserRolesRepoImpl) GetUserRoles(ctx context.Context, userId uint64) ([]*model.Role, error) {
	var roles []*model.Role
	err := s.db.WithContext(ctx).
		Table("roles").
		Select("roles.*").
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userId).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *UserRolesRepoImpl) GetUserHasRoleName(ctx context.Context, userId uint64, roleName string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.UserRole{}).
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ? AND roles.name = ?", userId, roleName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
