package model

import "time"

// Menu 菜单，归属于某个公司
type Menu struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"nombre" gorm:"column:nombre;type:varchar(150);not null"`
	Description string       `json:"descripcion" gorm:"column:descripcion;type:text"`
	CompanyID   uint         `json:"empresa_id" gorm:"column:empresa_id;not null;index"`
	Options     []MenuOption `json:"opciones" gorm:"foreignKey:MenuID"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// 该菜单被发布的日期，查询时填充
	PublishedDates []string `json:"fechas_publicadas" gorm:"-"`
}

func (Menu) TableName() string { return "menus" }

// MenuOption 菜单中的一个可选菜品；Price 可为空
type MenuOption struct {
	ID          uint     `json:"opcion_id" gorm:"primaryKey"`
	MenuID      uint     `json:"menu_id" gorm:"column:menu_id;not null;index"`
	Idx         int      `json:"idx" gorm:"column:idx;not null;default:0"`
	Name        string   `json:"nombre" gorm:"column:nombre;type:varchar(150);not null"`
	Description string   `json:"descripcion" gorm:"column:descripcion;type:text"`
	Price       *float64 `json:"precio" gorm:"column:precio;type:decimal(10,2)"`
}

func (MenuOption) TableName() string { return "menu_opciones" }

// MenuPublication 某公司某天发布的菜单
// ux_publicacion_empresa_fecha = (empresa_id, fecha)，每公司每天一份
type MenuPublication struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	CompanyID uint   `json:"empresa_id" gorm:"column:empresa_id;not null;uniqueIndex:ux_publicacion_empresa_fecha"`
	Date      string `json:"fecha" gorm:"column:fecha;type:varchar(10);not null;uniqueIndex:ux_publicacion_empresa_fecha"`
	MenuID    uint   `json:"menu_id" gorm:"column:menu_id;not null;index"`
}

func (MenuPublication) TableName() string { return "menu_publicaciones" }

// OptionRef 下单校验用：选项及其菜单名
type OptionRef struct {
	ID       uint   `gorm:"column:id"`
	MenuID   uint   `gorm:"column:menu_id"`
	Name     string `gorm:"column:opcion_nombre"`
	MenuName string `gorm:"column:menu_nombre"`
}
