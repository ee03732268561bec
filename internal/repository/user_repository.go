package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/comedor/internal/model"
)

// UserFilter 用户列表过滤条件，零值不过滤
type UserFilter struct {
	Role      model.Role
	CompanyID *uint
}

type UserRepository interface {
	List(ctx context.Context, f UserFilter) ([]model.UserView, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	// FindWorker 只返回 perfil = trabajador 的用户
	FindWorker(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	// Delete 在一个事务内删除用户及其全部订单
	Delete(ctx context.Context, id uint) error
}

type userRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) List(ctx context.Context, f UserFilter) ([]model.UserView, error) {
	q := r.db.WithContext(ctx).
		Table("usuarios AS u").
		Select("u.*, e.nombre AS empresa_nombre").
		Joins("LEFT JOIN empresas e ON u.empresa_id = e.id")
	if f.Role != "" {
		q = q.Where("u.perfil = ?", f.Role)
	}
	if f.CompanyID != nil {
		q = q.Where("u.empresa_id = ?", *f.CompanyID)
	}
	var res []model.UserView
	if err := q.Order("u.nombre").Scan(&res).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return res, nil
}

func (r *userRepository) Get(ctx context.Context, id uint) (*model.User, error) {
	return r.take(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *userRepository) FindWorker(ctx context.Context, id uint) (*model.User, error) {
	return r.take(r.db.WithContext(ctx).Where("id = ? AND perfil = ?", id, model.RoleWorker))
}

func (r *userRepository) take(q *gorm.DB) (*model.User, error) {
	var u model.User
	if err := q.Take(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trabajador_id = ?", id).Delete(&model.Order{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
