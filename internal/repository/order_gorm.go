package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/comedor/internal/model"
)

// 插入冲突后更新时若行已被并发删除，重新尝试插入的次数上限
const maxUpsertAttempts = 3

var errOrderVanished = errors.New("order removed concurrently")

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

const orderDetailColumns = `
	p.id,
	p.fecha,
	p.trabajador_id,
	p.opcion_id,
	mo.nombre AS opcion_nombre,
	mo.descripcion AS opcion_descripcion,
	mo.menu_id,
	m.nombre AS menu_nombre,
	m.descripcion AS menu_descripcion,
	mo.precio`

func (r *orderRepository) FindDetail(ctx context.Context, workerID uint, date string) (*model.OrderDetail, error) {
	var rows []model.OrderDetail
	err := r.db.WithContext(ctx).
		Table("pedidos AS p").
		Select(orderDetailColumns).
		Joins("JOIN menu_opciones mo ON p.opcion_id = mo.id").
		Joins("JOIN menus m ON mo.menu_id = m.id").
		Where("p.trabajador_id = ? AND p.fecha = ?", workerID, date).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	d := &rows[0]
	// 价格为 0 视为未定价
	if d.Price != nil && *d.Price == 0 {
		d.Price = nil
	}
	return d, nil
}

// Upsert 在一个事务内：INSERT ... ON CONFLICT (trabajador_id, fecha) DO NOTHING，
// 未插入则 UPDATE 既有行的 opcion_id。唯一索引保证并发下只有一行，后写者生效。
func (r *orderRepository) Upsert(ctx context.Context, workerID, optionID uint, date string) (uint, model.OrderAction, error) {
	for attempt := 0; attempt < maxUpsertAttempts; attempt++ {
		var (
			id     uint
			action model.OrderAction
		)
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			order := &model.Order{WorkerID: workerID, OptionID: optionID, Date: date}
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "trabajador_id"}, {Name: "fecha"}},
				DoNothing: true,
			}).Create(order)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 {
				id, action = order.ID, model.OrderCreated
				return nil
			}

			res = tx.Model(&model.Order{}).
				Where("trabajador_id = ? AND fecha = ?", workerID, date).
				Update("opcion_id", optionID)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errOrderVanished
			}

			var existing model.Order
			if err := tx.Select("id").
				Where("trabajador_id = ? AND fecha = ?", workerID, date).
				Take(&existing).Error; err != nil {
				return err
			}
			id, action = existing.ID, model.OrderUpdated
			return nil
		})
		if errors.Is(err, errOrderVanished) {
			continue
		}
		if err != nil {
			return 0, "", fmt.Errorf("upsert order: %w", err)
		}
		return id, action, nil
	}
	return 0, "", fmt.Errorf("upsert order: %w", errOrderVanished)
}

func (r *orderRepository) Delete(ctx context.Context, workerID uint, date string) error {
	res := r.db.WithContext(ctx).
		Where("trabajador_id = ? AND fecha = ?", workerID, date).
		Delete(&model.Order{})
	if res.Error != nil {
		return fmt.Errorf("delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) ListByDate(ctx context.Context, date string, companyID *uint) ([]model.ReceptionRow, error) {
	q := r.db.WithContext(ctx).
		Table("pedidos AS p").
		Select(`
			p.id,
			p.fecha,
			p.trabajador_id,
			u.nombre AS trabajador_nombre,
			u.identificacion AS trabajador_identificacion,
			u.empresa_id,
			e.nombre AS empresa_nombre,
			p.opcion_id,
			mo.nombre AS opcion_nombre,
			mo.menu_id,
			m.nombre AS menu_nombre,
			mo.precio AS opcion_precio`).
		Joins("JOIN usuarios u ON p.trabajador_id = u.id").
		Joins("LEFT JOIN empresas e ON u.empresa_id = e.id").
		Joins("JOIN menu_opciones mo ON p.opcion_id = mo.id").
		Joins("JOIN menus m ON mo.menu_id = m.id").
		Where("p.fecha = ?", date)
	if companyID != nil {
		q = q.Where("u.empresa_id = ?", *companyID)
	}

	var rows []model.ReceptionRow
	if err := q.Order("e.nombre, u.nombre, p.id").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return rows, nil
}

func (r *orderRepository) CountByWorkerDate(ctx context.Context, workerID uint, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("trabajador_id = ? AND fecha = ?", workerID, date).
		Count(&count).Error
	return count, err
}
