package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/comedor/internal/model"
)

type CompanyRepository interface {
	List(ctx context.Context) ([]model.Company, error)
	Get(ctx context.Context, id uint) (*model.Company, error)
	Create(ctx context.Context, c *model.Company) error
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
	// InUse 是否仍有用户或菜单引用该公司
	InUse(ctx context.Context, id uint) (bool, error)
}

type companyRepository struct{ db *gorm.DB }

func NewCompanyRepository(db *gorm.DB) CompanyRepository { return &companyRepository{db: db} }

func (r *companyRepository) List(ctx context.Context) ([]model.Company, error) {
	var res []model.Company
	err := r.db.WithContext(ctx).Order("nombre").Find(&res).Error
	return res, err
}

func (r *companyRepository) Get(ctx context.Context, id uint) (*model.Company, error) {
	var c model.Company
	if err := r.db.WithContext(ctx).Take(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

func (r *companyRepository) Create(ctx context.Context, c *model.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *companyRepository) Rename(ctx context.Context, id uint, name string) error {
	res := r.db.WithContext(ctx).Model(&model.Company{}).Where("id = ?", id).Update("nombre", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *companyRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Company{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *companyRepository) InUse(ctx context.Context, id uint) (bool, error) {
	var users, menus int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("empresa_id = ?", id).Count(&users).Error; err != nil {
		return false, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Menu{}).Where("empresa_id = ?", id).Count(&menus).Error; err != nil {
		return false, err
	}
	return users+menus > 0, nil
}
