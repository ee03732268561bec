package model

import "time"

// Company 客户公司（empresas）
type Company struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nombre" gorm:"column:nombre;type:varchar(150);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Company) TableName() string { return "empresas" }
