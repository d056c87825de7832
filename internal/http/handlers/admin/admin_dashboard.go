package admin

import (
	"context"
	"strconv"
	"strings"

	"github.com/shoestore/internal/http/response"
	"github.com/shoestore/internal/service"

	"github.com/gin-gonic/gin"
)

// serveDashboard 解析查询窗口并返回对应统计
func serveDashboard[T any](c *gin.Context, fetch func(context.Context, service.DashboardQueryInput) (T, error)) {
	input, err := parseDashboardQuery(c)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	data, err := fetch(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "error.dashboard_fetch_failed")
		return
	}
	response.Success(c, data)
}

// GetDashboardOverview 销售额、订单数、库存预警总览
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	serveDashboard(c, h.DashboardService.GetOverview)
}

// GetDashboardTrends 按日趋势
func (h *Handler) GetDashboardTrends(c *gin.Context) {
	serveDashboard(c, h.DashboardService.GetTrends)
}

// GetDashboardRankings 热销鞋款排行
func (h *Handler) GetDashboardRankings(c *gin.Context) {
	serveDashboard(c, h.DashboardService.GetRankings)
}

// parseDashboardQuery range 支持 today/7d/30d/custom，custom 需 from 与 to
func parseDashboardQuery(c *gin.Context) (service.DashboardQueryInput, error) {
	input := service.DashboardQueryInput{
		Range:    strings.TrimSpace(c.DefaultQuery("range", "7d")),
		Timezone: strings.TrimSpace(c.Query("tz")),
	}
	var err error
	if input.From, err = parseTimeNullable(strings.TrimSpace(c.Query("from"))); err != nil {
		return service.DashboardQueryInput{}, err
	}
	if input.To, err = parseTimeNullable(strings.TrimSpace(c.Query("to"))); err != nil {
		return service.DashboardQueryInput{}, err
	}
	if raw := strings.TrimSpace(c.Query("force_refresh")); raw != "" {
		if input.ForceRefresh, err = strconv.ParseBool(raw); err != nil {
			return service.DashboardQueryInput{}, err
		}
	}
	return input, nil
}
