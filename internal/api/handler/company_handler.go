package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/service"
	"github.com/d60-Lab/comedor/pkg/response"
)

type companyListResponse struct {
	Companies []model.Company `json:"empresas"`
}

type companyResponse struct {
	OK      bool           `json:"ok"`
	Message string         `json:"mensaje"`
	Company *model.Company `json:"empresa"`
}

// ListCompanies 公司列表
// @Summary 公司列表
// @Tags empresas
// @Produce json
// @Success 200 {object} companyListResponse
// @Router /api/v1/empresas [get]
func (h *Handler) ListCompanies(c *gin.Context) {
	list, err := h.companyService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, companyListResponse{Companies: list})
}

// CreateCompany 创建公司
// @Summary 创建公司
// @Tags empresas
// @Accept json
// @Produce json
// @Param request body service.CompanyInput true "公司"
// @Success 201 {object} companyResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /api/v1/empresas [post]
func (h *Handler) CreateCompany(c *gin.Context) {
	var in service.CompanyInput
	if !bindStrict(c, &in) {
		return
	}
	co, err := h.companyService.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, companyResponse{OK: true, Message: "Empresa creada", Company: co})
}

// UpdateCompany 重命名公司
// @Summary 更新公司
// @Tags empresas
// @Accept json
// @Produce json
// @Param request body service.CompanyInput true "公司，必须带 id"
// @Success 200 {object} companyResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /api/v1/empresas [put]
func (h *Handler) UpdateCompany(c *gin.Context) {
	var in service.CompanyInput
	if !bindStrict(c, &in) {
		return
	}
	co, err := h.companyService.Update(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, companyResponse{OK: true, Message: "Empresa actualizada", Company: co})
}

// DeleteCompany 删除公司
// @Summary 删除公司
// @Tags empresas
// @Accept json
// @Produce json
// @Param request body idRequest true "公司ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /api/v1/empresas [delete]
func (h *Handler) DeleteCompany(c *gin.Context) {
	req := bindLoose[idRequest](c)
	if err := h.companyService.Delete(c.Request.Context(), int64(req.ID)); err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, "Empresa eliminada")
}
