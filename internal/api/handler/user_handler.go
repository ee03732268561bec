package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/service"
	"github.com/d60-Lab/comedor/pkg/response"
)

type userListResponse struct {
	Users []model.UserView `json:"usuarios"`
}

type userResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"mensaje"`
	User    *model.User `json:"usuario"`
}

// ListUsers 用户列表
// @Summary 用户列表
// @Tags usuarios
// @Produce json
// @Param perfil query string false "角色" Enums(trabajador, supervisor, vendedor, administrador)
// @Param empresa_id query int false "公司ID"
// @Success 200 {object} userListResponse
// @Failure 400 {object} response.ErrorBody
// @Router /api/v1/usuarios [get]
func (h *Handler) ListUsers(c *gin.Context) {
	list, err := h.userService.List(c.Request.Context(), c.Query("perfil"), queryInt(c, "empresa_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, userListResponse{Users: list})
}

// CreateUser 创建用户
// @Summary 创建用户
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body service.UserInput true "用户"
// @Success 201 {object} userResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /api/v1/usuarios [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var in service.UserInput
	if !bindStrict(c, &in) {
		return
	}
	u, err := h.userService.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, userResponse{OK: true, Message: "Usuario creado correctamente", User: u})
}

// UpdateUser 更新用户，password 为空时保留原密码
// @Summary 更新用户
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body service.UserInput true "用户，必须带 id"
// @Success 200 {object} userResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /api/v1/usuarios [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	var in service.UserInput
	if !bindStrict(c, &in) {
		return
	}
	u, err := h.userService.Update(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, userResponse{OK: true, Message: "Usuario actualizado correctamente", User: u})
}

// DeleteUser 删除用户及其订单
// @Summary 删除用户
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body idRequest true "用户ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.ErrorBody
// @Router /api/v1/usuarios [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	req := bindLoose[idRequest](c)
	if err := h.userService.Delete(c.Request.Context(), int64(req.ID)); err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, "Usuario eliminado correctamente")
}
