package repository

import (
	"Viewy/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// AdRepo standard and wide ads share a row shape and differ by table
type AdRepo interface {
	GetActiveAds(ctx context.Context, kind model.AdKind) ([]*model.Advertisement, error)
	IncrViewsCount(ctx context.Context, kind model.AdKind, id uint64) (*model.Advertisement, error)
	IncrClickCount(ctx context.Context, kind model.AdKind, id uint64) (*model.Advertisement, error)
}

type AdRepoImpl struct {
	db *gorm.DB
}

func NewAdRepo(db *gorm.DB) AdRepo {
	return &AdRepoImpl{db: db}
}

func (s *AdRepoImpl) GetActiveAds(ctx context.Context, kind model.AdKind) ([]*model.Advertisement, error) {
	var ads []*model.Advertisement
	err := s.db.WithContext(ctx).Table(kind.Table()).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (s *AdRepoImpl) IncrViewsCount(ctx context.Context, kind model.AdKind, id uint64) (*model.Advertisement, error) {
	return s.incr(ctx, kind, id, "views_count")
}

func (s *AdRepoImpl) IncrClickCount(ctx context.Context, kind model.AdKind, id uint64) (*model.Advertisement, error) {
	return s.incr(ctx, kind, id, "click_count")
}

// incr bumps one counter and refreshes click_rate from the stored counters
func (s *AdRepoImpl) incr(ctx context.Context, kind model.AdKind, id uint64, column string) (*model.Advertisement, error) {
	var ad model.Advertisement
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table(kind.Table()).Where("id = ?", id).
			UpdateColumn(column, gorm.Expr(column+" + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Table(kind.Table()).Where("id = ?", id).First(&ad).Error; err != nil {
			return err
		}
		ad.ClickRate = model.ClickRate(ad.ClickCount, ad.ViewsCount)
		return tx.Table(kind.Table()).Where("id = ?", id).
			UpdateColumn("click_rate", ad.ClickRate).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ad, nil
}
