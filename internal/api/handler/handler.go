package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/comedor/internal/service"
	"github.com/d60-Lab/comedor/pkg/response"
)

// Check 健康检查项
type Check func(ctx context.Context) error

type Handler struct {
	orderService   service.OrderService
	menuService    service.MenuService
	companyService service.CompanyService
	userService    service.UserService
	menuCache      *service.MenuCache
	checks         map[string]Check
}

func NewHandler(
	orderService service.OrderService,
	menuService service.MenuService,
	companyService service.CompanyService,
	userService service.UserService,
	menuCache *service.MenuCache,
	checks map[string]Check,
) *Handler {
	return &Handler{
		orderService:   orderService,
		menuService:    menuService,
		companyService: companyService,
		userService:    userService,
		menuCache:      menuCache,
		checks:         checks,
	}
}

// fail 把服务层错误映射为 HTTP 状态
func (h *Handler) fail(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		response.BadRequest(c, verr.Msg)
	case isAny(err, service.ErrWorkerIDRequired, service.ErrOptionIDRequired, service.ErrInvalidDate,
		service.ErrIDRequired, service.ErrCompanyIDRequired, service.ErrMenuIDRequired,
		service.ErrCompanyMismatch, service.ErrUnknownAction):
		response.BadRequest(c, err.Error())
	case isAny(err, service.ErrWorkerNotFound, service.ErrOptionNotFound, service.ErrOrderNotFound,
		service.ErrCompanyNotFound, service.ErrUserNotFound, service.ErrMenuNotFound, service.ErrNotPublished):
		response.NotFound(c, err.Error())
	case isAny(err, service.ErrMenuInUse, service.ErrCompanyInUse, service.ErrDuplicate):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

func isAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// FlexInt 接受数字或数字字符串；无法解析时为 0
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null" || string(b) == "false":
		*n = 0
	case string(b) == "true":
		*n = 1
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FlexInt(parseLeadingInt(s))
	default:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = FlexInt(int64(f))
	}
	return nil
}

// parseLeadingInt 取字符串开头的整数部分，"7abc" -> 7，"abc" -> 0
func parseLeadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func queryInt(c *gin.Context, key string) int64 {
	return parseLeadingInt(c.Query(key))
}

// bindLoose 解析 JSON body；空 body 或格式错误时视为空对象
func bindLoose[T any](c *gin.Context) T {
	var v T
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return v
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero
	}
	return v
}

// bindStrict 管理类接口：格式错误直接 400
func bindStrict(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BadRequest(c, "JSON inválido: "+err.Error())
		return false
	}
	return true
}

type idRequest struct {
	ID FlexInt `json:"id" swaggertype:"integer"`
}
