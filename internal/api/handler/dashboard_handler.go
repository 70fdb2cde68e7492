package handler

import (
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/service"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
	}
}

// Dashboard 按过滤条件返回完整看板数据
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := h.dashboardSvc.Dashboard(c.Request.Context(), sessionID(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}

// Export 下载 leaderboard.csv / leaderboard.xlsx / payouts.csv / payouts.xlsx
func (h *DashboardHandler) Export(c *gin.Context) {
	name, format, ok := strings.Cut(c.Param("file"), ".")
	if !ok {
		response.Error(c, service.ErrExportNotFound)
		return
	}

	filter, err := bindFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	file, err := h.dashboardSvc.Export(c.Request.Context(), sessionID(c), filter, name, strings.ToLower(format))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
