package model

import (
	"time"
)

// Order 某个工人在某一天的午餐选择（pedidos 表）
// ux_pedido_trabajador_fecha = (trabajador_id, fecha)，每人每天至多一条
type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	WorkerID  uint      `json:"trabajador_id" gorm:"column:trabajador_id;not null;uniqueIndex:ux_pedido_trabajador_fecha;index"`
	OptionID  uint      `json:"opcion_id" gorm:"column:opcion_id;not null;index"`
	Date      string    `json:"fecha" gorm:"column:fecha;type:varchar(10);not null;uniqueIndex:ux_pedido_trabajador_fecha;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "pedidos"
}

// OrderDetail 订单及其展示字段（连表结果）
type OrderDetail struct {
	ID                uint     `json:"id"`
	Date              string   `json:"fecha" gorm:"column:fecha"`
	WorkerID          uint     `json:"trabajador_id" gorm:"column:trabajador_id"`
	OptionID          uint     `json:"opcion_id" gorm:"column:opcion_id"`
	OptionName        string   `json:"opcion_nombre" gorm:"column:opcion_nombre"`
	OptionDescription string   `json:"opcion_descripcion" gorm:"column:opcion_descripcion"`
	MenuID            uint     `json:"menu_id" gorm:"column:menu_id"`
	MenuName          string   `json:"menu_nombre" gorm:"column:menu_nombre"`
	MenuDescription   string   `json:"menu_descripcion" gorm:"column:menu_descripcion"`
	Price             *float64 `json:"precio" gorm:"column:precio"`
}

// ReceptionRow 接单视图中的一行：订单 + 工人 + 公司
type ReceptionRow struct {
	ID                   uint     `json:"id"`
	Date                 string   `json:"fecha" gorm:"column:fecha"`
	WorkerID             uint     `json:"trabajador_id" gorm:"column:trabajador_id"`
	WorkerName           string   `json:"trabajador_nombre" gorm:"column:trabajador_nombre"`
	WorkerIdentification string   `json:"trabajador_identificacion" gorm:"column:trabajador_identificacion"`
	CompanyID            *uint    `json:"empresa_id" gorm:"column:empresa_id"`
	CompanyName          *string  `json:"empresa_nombre" gorm:"column:empresa_nombre"`
	OptionID             uint     `json:"opcion_id" gorm:"column:opcion_id"`
	OptionName           string   `json:"opcion_nombre" gorm:"column:opcion_nombre"`
	MenuID               uint     `json:"menu_id" gorm:"column:menu_id"`
	MenuName             string   `json:"menu_nombre" gorm:"column:menu_nombre"`
	Price                *float64 `json:"opcion_precio" gorm:"column:opcion_precio"`
}

// OrderAction 写入结果
type OrderAction string

const (
	OrderCreated OrderAction = "creado"
	OrderUpdated OrderAction = "actualizado"
)
