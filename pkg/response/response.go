package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 所有错误响应的形状
type ErrorBody struct {
	Error string `json:"error" example:"trabajador_id es requerido"`
}

// Message 只带确认信息的成功响应
type Message struct {
	OK      bool   `json:"ok" example:"true"`
	Message string `json:"mensaje,omitempty" example:"Pedido cancelado correctamente"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// OK 返回 {"ok": true, "mensaje": msg}
func OK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Message{OK: true, Message: msg})
}

func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}

func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}

func Conflict(c *gin.Context, msg string) {
	Error(c, http.StatusConflict, msg)
}

func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed, "Método no permitido")
}

func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, "demasiadas solicitudes")
}

// InternalError 存储层错误原样返回给调用方
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, err.Error())
}
