package service

import "errors"

// 参数校验错误 (400)
var (
	ErrWorkerIDRequired  = errors.New("trabajador_id es requerido")
	ErrOptionIDRequired  = errors.New("opcion_id es requerido")
	ErrInvalidDate       = errors.New("fecha inválida, formato esperado YYYY-MM-DD")
	ErrIDRequired        = errors.New("id es requerido")
	ErrCompanyIDRequired = errors.New("empresa_id es requerido")
	ErrMenuIDRequired    = errors.New("menu_id es requerido")
	ErrCompanyMismatch   = errors.New("el menú no pertenece a la empresa indicada")
	ErrUnknownAction     = errors.New("acción no soportada")
)

// 引用不存在 (404)
var (
	ErrWorkerNotFound  = errors.New("Trabajador no encontrado")
	ErrOptionNotFound  = errors.New("Opción de menú no encontrada")
	ErrOrderNotFound   = errors.New("No se encontró pedido para cancelar")
	ErrCompanyNotFound = errors.New("empresa no encontrada")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrMenuNotFound    = errors.New("menú no encontrado")
	ErrNotPublished    = errors.New("no hay menú publicado para esa empresa y fecha")
)

// 状态冲突 (409)
var (
	ErrMenuInUse    = errors.New("el menú tiene pedidos asociados")
	ErrCompanyInUse = errors.New("la empresa tiene usuarios o menús asociados")
	ErrDuplicate    = errors.New("registro duplicado")
)

// ValidationError 字段级校验失败 (400)
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
