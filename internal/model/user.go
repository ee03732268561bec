package model

import "time"

// Role 用户角色（perfil）
type Role string

const (
	RoleWorker     Role = "trabajador"
	RoleSupervisor Role = "supervisor"
	RoleSeller     Role = "vendedor"
	RoleAdmin      Role = "administrador"
)

// Valid 是否为已知角色
func (r Role) Valid() bool {
	switch r {
	case RoleWorker, RoleSupervisor, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// User 平台用户（usuarios），密码只保存 bcrypt 哈希
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Identification string    `json:"identificacion" gorm:"column:identificacion;type:varchar(50);not null;uniqueIndex"`
	Name           string    `json:"nombre" gorm:"column:nombre;type:varchar(150);not null"`
	Email          string    `json:"email" gorm:"type:varchar(150);not null;uniqueIndex"`
	Password       string    `json:"-" gorm:"column:password;not null"`
	Role           Role      `json:"perfil" gorm:"column:perfil;type:varchar(20);not null;index"`
	CompanyID      *uint     `json:"empresa_id" gorm:"column:empresa_id;index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string { return "usuarios" }

// UserView 列表展示用，带公司名
type UserView struct {
	User
	CompanyName *string `json:"empresa_nombre" gorm:"column:empresa_nombre"`
}
