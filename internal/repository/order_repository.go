package repository

import (
	"context"

	"github.com/d60-Lab/comedor/internal/model"
)

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// FindDetail 查询工人某天的订单及展示字段，不存在返回 ErrNotFound
	FindDetail(ctx context.Context, workerID uint, date string) (*model.OrderDetail, error)

	// Upsert 原子地创建或替换 (workerID, date) 的订单
	Upsert(ctx context.Context, workerID, optionID uint, date string) (uint, model.OrderAction, error)

	// Delete 删除 (workerID, date) 的订单，不存在返回 ErrNotFound
	Delete(ctx context.Context, workerID uint, date string) error

	// ListByDate 某天全部订单（接单视图），companyID 为空时不过滤
	ListByDate(ctx context.Context, date string, companyID *uint) ([]model.ReceptionRow, error)

	// CountByWorkerDate 统计 (workerID, date) 的订单数量，正常情况下不超过 1
	CountByWorkerDate(ctx context.Context, workerID uint, date string) (int64, error)
}
