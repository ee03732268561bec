package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/comedor/internal/model"
)

// MenuRepository 菜单目录仓储
type MenuRepository interface {
	// List 列出菜单（含选项与发布日期），companyID 为空时列出全部
	List(ctx context.Context, companyID *uint) ([]model.Menu, error)
	// ListPublished 某公司某天发布的菜单（至多一个）
	ListPublished(ctx context.Context, companyID uint, date string) ([]model.Menu, error)
	Get(ctx context.Context, id uint) (*model.Menu, error)
	Create(ctx context.Context, m *model.Menu) error
	// Update 更新菜单及选项：有 ID 的选项原地更新，无 ID 的新建，缺失的删除；
	// 换公司时同时撤下该菜单的全部发布
	Update(ctx context.Context, m *model.Menu) error
	Delete(ctx context.Context, id uint) error
	// Copy 把菜单及选项复制到另一公司，返回新菜单
	Copy(ctx context.Context, id, targetCompanyID uint) (*model.Menu, error)
	// Publish 某公司某天只能发布一个菜单，重复发布覆盖
	Publish(ctx context.Context, companyID uint, date string, menuID uint) error
	Unpublish(ctx context.Context, companyID uint, date string) error
	FindOption(ctx context.Context, optionID uint) (*model.OptionRef, error)
}

type menuRepository struct{ db *gorm.DB }

func NewMenuRepository(db *gorm.DB) MenuRepository { return &menuRepository{db: db} }

func preloadOptions(db *gorm.DB) *gorm.DB {
	return db.Order("idx, id")
}

func (r *menuRepository) List(ctx context.Context, companyID *uint) ([]model.Menu, error) {
	q := r.db.WithContext(ctx).Preload("Options", preloadOptions)
	if companyID != nil {
		q = q.Where("empresa_id = ?", *companyID)
	}
	var menus []model.Menu
	if err := q.Order("id").Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	if err := r.fillPublishedDates(ctx, menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) ListPublished(ctx context.Context, companyID uint, date string) ([]model.Menu, error) {
	var menus []model.Menu
	err := r.db.WithContext(ctx).
		Preload("Options", preloadOptions).
		Joins("JOIN menu_publicaciones mp ON mp.menu_id = menus.id").
		Where("mp.empresa_id = ? AND mp.fecha = ?", companyID, date).
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("list published menus: %w", err)
	}
	if err := r.fillPublishedDates(ctx, menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) fillPublishedDates(ctx context.Context, menus []model.Menu) error {
	if len(menus) == 0 {
		return nil
	}
	ids := make([]uint, len(menus))
	for i, m := range menus {
		ids[i] = m.ID
	}
	var pubs []model.MenuPublication
	if err := r.db.WithContext(ctx).Where("menu_id IN ?", ids).Order("fecha").Find(&pubs).Error; err != nil {
		return fmt.Errorf("list publications: %w", err)
	}
	byMenu := make(map[uint][]string, len(menus))
	for _, p := range pubs {
		byMenu[p.MenuID] = append(byMenu[p.MenuID], p.Date)
	}
	for i := range menus {
		menus[i].PublishedDates = byMenu[menus[i].ID]
		if menus[i].PublishedDates == nil {
			menus[i].PublishedDates = []string{}
		}
	}
	return nil
}

func (r *menuRepository) Get(ctx context.Context, id uint) (*model.Menu, error) {
	var m model.Menu
	if err := r.db.WithContext(ctx).Preload("Options", preloadOptions).Take(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get menu: %w", err)
	}
	menus := []model.Menu{m}
	if err := r.fillPublishedDates(ctx, menus); err != nil {
		return nil, err
	}
	return &menus[0], nil
}

func (r *menuRepository) Create(ctx context.Context, m *model.Menu) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *menuRepository) Update(ctx context.Context, m *model.Menu) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prev model.Menu
		if err := tx.Select("id", "empresa_id").Take(&prev, m.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		res := tx.Model(&model.Menu{}).Where("id = ?", m.ID).Updates(map[string]any{
			"nombre":      m.Name,
			"descripcion": m.Description,
			"empresa_id":  m.CompanyID,
		})
		if res.Error != nil {
			return res.Error
		}
		// 换公司后原公司的发布不再有效
		if prev.CompanyID != m.CompanyID {
			if err := tx.Where("menu_id = ?", m.ID).Delete(&model.MenuPublication{}).Error; err != nil {
				return err
			}
		}

		var current []model.MenuOption
		if err := tx.Where("menu_id = ?", m.ID).Find(&current).Error; err != nil {
			return err
		}
		keep := make(map[uint]bool, len(m.Options))
		for i := range m.Options {
			opt := &m.Options[i]
			opt.MenuID = m.ID
			if opt.ID == 0 {
				if err := tx.Create(opt).Error; err != nil {
					return err
				}
				continue
			}
			keep[opt.ID] = true
			res := tx.Model(&model.MenuOption{}).
				Where("id = ? AND menu_id = ?", opt.ID, m.ID).
				Updates(map[string]any{
					"idx":         opt.Idx,
					"nombre":      opt.Name,
					"descripcion": opt.Description,
					"precio":      opt.Price,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("option %d of menu %d: %w", opt.ID, m.ID, ErrNotFound)
			}
		}

		var drop []uint
		for _, o := range current {
			if !keep[o.ID] {
				drop = append(drop, o.ID)
			}
		}
		return deleteOptions(tx, drop)
	})
}

// deleteOptions 删除选项；若有订单引用返回 ErrInUse
func deleteOptions(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var refs int64
	if err := tx.Model(&model.Order{}).Where("opcion_id IN ?", ids).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}
	return tx.Where("id IN ?", ids).Delete(&model.MenuOption{}).Error
}

func (r *menuRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&model.MenuOption{}).Where("menu_id = ?", id).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if err := deleteOptions(tx, ids); err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", id).Delete(&model.MenuPublication{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Menu{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *menuRepository) Copy(ctx context.Context, id, targetCompanyID uint) (*model.Menu, error) {
	var copied *model.Menu
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var src model.Menu
		if err := tx.Preload("Options", preloadOptions).Take(&src, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		dst := &model.Menu{
			Name:        src.Name,
			Description: src.Description,
			CompanyID:   targetCompanyID,
			Options:     make([]model.MenuOption, len(src.Options)),
		}
		for i, o := range src.Options {
			dst.Options[i] = model.MenuOption{Idx: o.Idx, Name: o.Name, Description: o.Description, Price: o.Price}
		}
		if err := tx.Create(dst).Error; err != nil {
			return err
		}
		copied = dst
		return nil
	})
	if err != nil {
		return nil, err
	}
	return copied, nil
}

func (r *menuRepository) Publish(ctx context.Context, companyID uint, date string, menuID uint) error {
	pub := &model.MenuPublication{CompanyID: companyID, Date: date, MenuID: menuID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "empresa_id"}, {Name: "fecha"}},
		DoUpdates: clause.AssignmentColumns([]string{"menu_id"}),
	}).Create(pub).Error
}

func (r *menuRepository) Unpublish(ctx context.Context, companyID uint, date string) error {
	res := r.db.WithContext(ctx).
		Where("empresa_id = ? AND fecha = ?", companyID, date).
		Delete(&model.MenuPublication{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuRepository) FindOption(ctx context.Context, optionID uint) (*model.OptionRef, error) {
	var rows []model.OptionRef
	err := r.db.WithContext(ctx).
		Table("menu_opciones AS mo").
		Select("mo.id, mo.menu_id, mo.nombre AS opcion_nombre, m.nombre AS menu_nombre").
		Joins("JOIN menus m ON mo.menu_id = m.id").
		Where("mo.id = ?", optionID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find option: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}
