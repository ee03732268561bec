// Package testutil 测试用的内存数据库与基础数据
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/d60-Lab/comedor/internal/model"
)

// NewDB 打开一个已迁移的内存 sqlite；单连接保证所有调用看到同一个库
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	return open(t, ":memory:", 1)
}

// NewFileDB 临时目录下的文件 sqlite，允许多个连接并发写
func NewFileDB(t testing.TB, conns int) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "comedor.db") + "?_busy_timeout=10000&_journal_mode=WAL&_txlock=immediate"
	return open(t, dsn, conns)
}

func open(t testing.TB, dsn string, conns int) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(conns)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

// Fixture 一组常用的基础数据
type Fixture struct {
	Company    model.Company
	Worker     model.User
	Supervisor model.User
	Menu       model.Menu
}

// Price 构造可空价格
func Price(v float64) *float64 { return &v }

// Seed 创建一个公司、一个工人、一个主管和一个带三个选项的菜单
func Seed(t testing.TB, db *gorm.DB) *Fixture {
	t.Helper()
	f := &Fixture{Company: model.Company{Name: "Constructora Andes"}}
	require.NoError(t, db.Create(&f.Company).Error)

	f.Worker = model.User{
		Identification: "11111111-1",
		Name:           "Pedro Pérez",
		Email:          "pedro@example.com",
		Password:       "x",
		Role:           model.RoleWorker,
		CompanyID:      &f.Company.ID,
	}
	require.NoError(t, db.Create(&f.Worker).Error)

	f.Supervisor = model.User{
		Identification: "22222222-2",
		Name:           "Juan Soto",
		Email:          "juan@example.com",
		Password:       "x",
		Role:           model.RoleSupervisor,
	}
	require.NoError(t, db.Create(&f.Supervisor).Error)

	f.Menu = model.Menu{
		Name:        "Menú semana 1",
		Description: "Almuerzo ejecutivo",
		CompanyID:   f.Company.ID,
		Options: []model.MenuOption{
			{Idx: 1, Name: "Pollo asado", Description: "con arroz", Price: Price(4500)},
			{Idx: 2, Name: "Pescado frito", Description: "con ensalada", Price: Price(5200)},
			{Idx: 3, Name: "Vegetariano", Description: "lentejas"},
		},
	}
	require.NoError(t, db.Create(&f.Menu).Error)
	return f
}
