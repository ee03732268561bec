package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/repository"
	"github.com/d60-Lab/comedor/pkg/logger"
)

// EventPublisher 订单事件出口（RabbitMQ 或 Nop）
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// 订单事件类型，同时作为 routing key
const (
	EventOrderCreated   = "pedido.creado"
	EventOrderUpdated   = "pedido.actualizado"
	EventOrderCancelled = "pedido.cancelado"
)

// OrderEvent 订单写入成功后发布的事件
type OrderEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"tipo"`
	OrderID    uint      `json:"pedido_id,omitempty"`
	WorkerID   uint      `json:"trabajador_id"`
	OptionID   uint      `json:"opcion_id,omitempty"`
	Date       string    `json:"fecha"`
	OccurredAt time.Time `json:"ocurrido_en"`
}

// OrderLookup 查询结果：有单或无单都是正常结果
type OrderLookup struct {
	HasOrder bool               `json:"tiene_pedido"`
	Order    *model.OrderDetail `json:"pedido"`
}

// UpsertResult 创建/替换结果，带菜单与选项名供调用方确认
type UpsertResult struct {
	OrderID    uint
	Action     model.OrderAction
	Date       string
	MenuName   string
	OptionName string
}

// Reception 接单视图
type Reception struct {
	Date    string               `json:"fecha"`
	Orders  []model.ReceptionRow `json:"pedidos"`
	Summary ReceptionSummary     `json:"resumen"`
}

// ReceptionSummary 按选项汇总
type ReceptionSummary struct {
	Total    int            `json:"total"`
	ByOption map[string]int `json:"por_opcion"`
	Ranking  []string       `json:"ranking"`
}

// OrderService 订单记录服务
type OrderService interface {
	GetForDate(ctx context.Context, workerID int64, date string) (*OrderLookup, error)
	Upsert(ctx context.Context, workerID, optionID int64, date string) (*UpsertResult, error)
	Cancel(ctx context.Context, workerID int64, date string) error
	ListForDate(ctx context.Context, date string, companyID int64) (*Reception, error)
}

type orderService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	menus  repository.MenuRepository
	events EventPublisher
	clock  Clock
}

func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, menus repository.MenuRepository, events EventPublisher, clock Clock) OrderService {
	return &orderService{orders: orders, users: users, menus: menus, events: events, clock: clock}
}

func (s *orderService) GetForDate(ctx context.Context, workerID int64, date string) (*OrderLookup, error) {
	if workerID <= 0 {
		return nil, ErrWorkerIDRequired
	}
	day, err := s.clock.ResolveDate(date)
	if err != nil {
		return nil, err
	}
	d, err := s.orders.FindDetail(ctx, uint(workerID), day)
	if errors.Is(err, repository.ErrNotFound) {
		return &OrderLookup{HasOrder: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &OrderLookup{HasOrder: true, Order: d}, nil
}

func (s *orderService) Upsert(ctx context.Context, workerID, optionID int64, date string) (*UpsertResult, error) {
	if workerID <= 0 {
		return nil, ErrWorkerIDRequired
	}
	if optionID <= 0 {
		return nil, ErrOptionIDRequired
	}
	day, err := s.clock.ResolveDate(date)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindWorker(ctx, uint(workerID)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	opt, err := s.menus.FindOption(ctx, uint(optionID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}

	id, action, err := s.orders.Upsert(ctx, uint(workerID), opt.ID, day)
	if err != nil {
		return nil, err
	}

	evt := EventOrderUpdated
	if action == model.OrderCreated {
		evt = EventOrderCreated
	}
	s.publish(ctx, OrderEvent{Type: evt, OrderID: id, WorkerID: uint(workerID), OptionID: opt.ID, Date: day})

	return &UpsertResult{
		OrderID:    id,
		Action:     action,
		Date:       day,
		MenuName:   opt.MenuName,
		OptionName: opt.Name,
	}, nil
}

func (s *orderService) Cancel(ctx context.Context, workerID int64, date string) error {
	if workerID <= 0 {
		return ErrWorkerIDRequired
	}
	day, err := s.clock.ResolveDate(date)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, uint(workerID), day); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	s.publish(ctx, OrderEvent{Type: EventOrderCancelled, WorkerID: uint(workerID), Date: day})
	return nil
}

func (s *orderService) ListForDate(ctx context.Context, date string, companyID int64) (*Reception, error) {
	day, err := s.clock.ResolveDate(date)
	if err != nil {
		return nil, err
	}
	var company *uint
	if companyID > 0 {
		id := uint(companyID)
		company = &id
	}
	rows, err := s.orders.ListByDate(ctx, day, company)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.ReceptionRow{}
	}
	return &Reception{Date: day, Orders: rows, Summary: summarize(rows)}, nil
}

func summarize(rows []model.ReceptionRow) ReceptionSummary {
	sum := ReceptionSummary{ByOption: make(map[string]int)}
	for _, r := range rows {
		if r.OptionName == "" {
			continue
		}
		sum.ByOption[r.OptionName]++
		sum.Total++
	}
	sum.Ranking = sum.TopOptions()
	return sum
}

// TopOptions 按数量降序返回选项名，数量相同时按名称
func (s ReceptionSummary) TopOptions() []string {
	names := make([]string, 0, len(s.ByOption))
	for n := range s.ByOption {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.ByOption[names[i]] != s.ByOption[names[j]] {
			return s.ByOption[names[i]] > s.ByOption[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// publish 写入已提交，事件发布失败只记日志
func (s *orderService) publish(ctx context.Context, evt OrderEvent) {
	if s.events == nil {
		return
	}
	evt.ID = uuid.NewString()
	evt.OccurredAt = time.Now().UTC()
	if err := s.events.Publish(ctx, evt.Type, evt); err != nil {
		logger.Warn("publish order event failed",
			zap.String("type", evt.Type),
			zap.Uint("trabajador_id", evt.WorkerID),
			zap.String("fecha", evt.Date),
			zap.Error(err))
	}
}
