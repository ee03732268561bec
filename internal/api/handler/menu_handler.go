package handler

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/service"
	"github.com/d60-Lab/comedor/pkg/response"
)

const (
	menuActionCopy      = "copy"
	menuActionPublish   = "publish"
	menuActionUnpublish = "unpublish"
)

type menuActionRequest struct {
	Action          string  `json:"action" enums:"copy,publish,unpublish"`
	MenuID          FlexInt `json:"menu_id" swaggertype:"integer"`
	CompanyID       FlexInt `json:"empresa_id" swaggertype:"integer"`
	TargetCompanyID FlexInt `json:"target_empresa_id" swaggertype:"integer"`
	Date            string  `json:"fecha"`
}

type menuListResponse struct {
	Menus []model.Menu `json:"menus"`
}

type menuResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"mensaje"`
	Menu    *model.Menu `json:"menu"`
}

type publicationResponse struct {
	OK        bool   `json:"ok"`
	Message   string `json:"mensaje"`
	CompanyID int64  `json:"empresa_id,omitempty"`
	Date      string `json:"fecha"`
}

// ListMenus 菜单列表
// @Summary 菜单列表
// @Description 带 fecha 时只返回该公司当天发布的菜单
// @Tags menus
// @Produce json
// @Param empresa_id query int false "公司ID"
// @Param fecha query string false "发布日期"
// @Success 200 {object} menuListResponse
// @Failure 400 {object} response.ErrorBody
// @Router /api/v1/menus [get]
func (h *Handler) ListMenus(c *gin.Context) {
	menus, err := h.menuService.List(c.Request.Context(), queryInt(c, "empresa_id"), c.Query("fecha"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, menuListResponse{Menus: menus})
}

// PostMenu 创建菜单，或按 action 复制/发布/取消发布
// @Summary 创建菜单 / copy / publish / unpublish
// @Tags menus
// @Accept json
// @Produce json
// @Param request body service.MenuInput true "菜单；或 {action, menu_id, empresa_id, target_empresa_id, fecha}"
// @Success 201 {object} menuResponse
// @Success 200 {object} publicationResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /api/v1/menus [post]
func (h *Handler) PostMenu(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	var act menuActionRequest
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &act); err != nil {
			response.BadRequest(c, "JSON inválido: "+err.Error())
			return
		}
	}

	ctx := c.Request.Context()
	switch act.Action {
	case "":
		var in service.MenuInput
		if err := json.Unmarshal(raw, &in); err != nil {
			response.BadRequest(c, "JSON inválido: "+err.Error())
			return
		}
		m, err := h.menuService.Create(ctx, in)
		if err != nil {
			h.fail(c, err)
			return
		}
		response.Created(c, menuResponse{OK: true, Message: "Menú creado correctamente", Menu: m})
	case menuActionCopy:
		target := act.TargetCompanyID
		if target == 0 {
			target = act.CompanyID
		}
		m, err := h.menuService.Copy(ctx, int64(act.MenuID), int64(target))
		if err != nil {
			h.fail(c, err)
			return
		}
		response.Created(c, menuResponse{OK: true, Message: "Menú copiado correctamente", Menu: m})
	case menuActionPublish:
		day, err := h.menuService.Publish(ctx, int64(act.MenuID), int64(act.CompanyID), act.Date)
		if err != nil {
			h.fail(c, err)
			return
		}
		response.Success(c, publicationResponse{OK: true, Message: "Menú publicado", CompanyID: int64(act.CompanyID), Date: day})
	case menuActionUnpublish:
		day, err := h.menuService.Unpublish(ctx, int64(act.CompanyID), act.Date)
		if err != nil {
			h.fail(c, err)
			return
		}
		response.Success(c, publicationResponse{OK: true, Message: "Menú despublicado", CompanyID: int64(act.CompanyID), Date: day})
	default:
		h.fail(c, service.ErrUnknownAction)
	}
}

// UpdateMenu 更新菜单与选项
// @Summary 更新菜单
// @Tags menus
// @Accept json
// @Produce json
// @Param request body service.MenuInput true "菜单，必须带 id"
// @Success 200 {object} menuResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /api/v1/menus [put]
func (h *Handler) UpdateMenu(c *gin.Context) {
	var in service.MenuInput
	if !bindStrict(c, &in) {
		return
	}
	m, err := h.menuService.Update(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, menuResponse{OK: true, Message: "Menú actualizado correctamente", Menu: m})
}

// DeleteMenu 删除菜单
// @Summary 删除菜单
// @Tags menus
// @Accept json
// @Produce json
// @Param request body idRequest true "菜单ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /api/v1/menus [delete]
func (h *Handler) DeleteMenu(c *gin.Context) {
	req := bindLoose[idRequest](c)
	if err := h.menuService.Delete(c.Request.Context(), int64(req.ID)); err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, "Menú eliminado correctamente")
}
