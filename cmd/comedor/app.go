package main

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/comedor/config"
	"github.com/d60-Lab/comedor/internal/api/handler"
	"github.com/d60-Lab/comedor/internal/repository"
	"github.com/d60-Lab/comedor/internal/service"
	"github.com/d60-Lab/comedor/pkg/cache"
	"github.com/d60-Lab/comedor/pkg/database"
	"github.com/d60-Lab/comedor/pkg/logger"
	"github.com/d60-Lab/comedor/pkg/mq"
)

type publisher interface {
	service.EventPublisher
	Close() error
}

// app 持有所有已连接的依赖
type app struct {
	db     *gorm.DB
	rdb    *redis.Client
	events publisher

	orders    service.OrderService
	menus     service.MenuService
	companies service.CompanyService
	users     service.UserService
	menuCache *service.MenuCache
	checks    map[string]handler.Check
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{db: db, events: mq.Nop{}}
	a.checks = map[string]handler.Check{"database": a.pingDB}

	a.rdb, err = cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		a.close()
		return nil, err
	}

	if cfg.RabbitMQ.URL != "" {
		p, err := mq.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			a.close()
			return nil, err
		}
		a.events = p
		a.checks["rabbitmq"] = p.Healthy
		logger.Info("order events enabled", zap.String("exchange", cfg.RabbitMQ.Exchange))
	}

	clock := service.NewClock(loc)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	a.menuCache = service.NewMenuCache(a.rdb, cfg.Redis.MenuTTL)
	if a.rdb != nil {
		a.checks["redis"] = a.menuCache.Ping
	}
	a.orders = service.NewOrderService(orderRepo, userRepo, menuRepo, a.events, clock)
	a.menus = service.NewMenuService(menuRepo, companyRepo, a.menuCache, clock)
	a.companies = service.NewCompanyService(companyRepo)
	a.users = service.NewUserService(userRepo, companyRepo)
	return a, nil
}

func (a *app) handler() *handler.Handler {
	return handler.NewHandler(a.orders, a.menus, a.companies, a.users, a.menuCache, a.checks)
}

func (a *app) pingDB(ctx context.Context) error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (a *app) close() {
	if a.events != nil {
		if err := a.events.Close(); err != nil {
			logger.Warn("close publisher", zap.Error(err))
		}
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			logger.Warn("close redis", zap.Error(err))
		}
	}
	if err := database.Close(a.db); err != nil {
		logger.Warn("close database", zap.Error(err))
	}
}
