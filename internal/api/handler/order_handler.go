package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/pkg/response"
)

type orderRequest struct {
	WorkerID FlexInt `json:"trabajador_id" swaggertype:"integer" example:"7"`
	OptionID FlexInt `json:"opcion_id" swaggertype:"integer" example:"3"`
	Date     string  `json:"fecha" example:"2024-06-01"`
}

type orderDetails struct {
	Menu   string `json:"menu"`
	Option string `json:"opcion"`
}

type upsertOrderResponse struct {
	OK      bool              `json:"ok"`
	Message string            `json:"mensaje"`
	OrderID uint              `json:"pedido_id"`
	Action  model.OrderAction `json:"accion" enums:"creado,actualizado"`
	Date    string            `json:"fecha"`
	Details orderDetails      `json:"detalles"`
}

// GetOrder 查询工人某天的订单
// @Summary 查询订单
// @Tags pedidos
// @Produce json
// @Param trabajador_id query int true "工人ID"
// @Param fecha query string false "日期 YYYY-MM-DD，默认今天"
// @Success 200 {object} service.OrderLookup
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/v1/pedido [get]
func (h *Handler) GetOrder(c *gin.Context) {
	res, err := h.orderService.GetForDate(c.Request.Context(), queryInt(c, "trabajador_id"), c.Query("fecha"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, res)
}

// UpsertOrder 创建或替换当天订单
// @Summary 创建/替换订单
// @Description 每个工人每天最多一单；已有订单时替换选项
// @Tags pedidos
// @Accept json
// @Produce json
// @Param request body orderRequest true "订单"
// @Success 201 {object} upsertOrderResponse "creado"
// @Success 200 {object} upsertOrderResponse "actualizado"
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/v1/pedido [post]
func (h *Handler) UpsertOrder(c *gin.Context) {
	req := bindLoose[orderRequest](c)
	res, err := h.orderService.Upsert(c.Request.Context(), int64(req.WorkerID), int64(req.OptionID), req.Date)
	if err != nil {
		h.fail(c, err)
		return
	}

	body := upsertOrderResponse{
		OK:      true,
		OrderID: res.OrderID,
		Action:  res.Action,
		Date:    res.Date,
		Details: orderDetails{Menu: res.MenuName, Option: res.OptionName},
	}
	if res.Action == model.OrderCreated {
		body.Message = "Pedido creado correctamente"
		response.Created(c, body)
		return
	}
	body.Message = "Pedido actualizado correctamente"
	response.Success(c, body)
}

// CancelOrder 取消当天订单
// @Summary 取消订单
// @Tags pedidos
// @Accept json
// @Produce json
// @Param request body orderRequest true "trabajador_id 与可选 fecha"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/v1/pedido [delete]
func (h *Handler) CancelOrder(c *gin.Context) {
	req := bindLoose[orderRequest](c)
	if err := h.orderService.Cancel(c.Request.Context(), int64(req.WorkerID), req.Date); err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, "Pedido cancelado correctamente")
}

// ListOrders 接单视图
// @Summary 某天全部订单
// @Tags pedidos
// @Produce json
// @Param fecha query string false "日期，默认今天"
// @Param empresa_id query int false "公司过滤"
// @Success 200 {object} service.Reception
// @Failure 400 {object} response.ErrorBody
// @Router /api/v1/pedidos [get]
func (h *Handler) ListOrders(c *gin.Context) {
	res, err := h.orderService.ListForDate(c.Request.Context(), c.Query("fecha"), queryInt(c, "empresa_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, res)
}
