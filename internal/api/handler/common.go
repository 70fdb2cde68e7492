package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/metrics"
	"Pulseboard/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

// bindFilter 从查询参数解析过滤条件
func bindFilter(c *gin.Context) (metrics.Filter, error) {
	var q dto.DashboardQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		log.WarnContext(c.Request.Context(), "invalid dashboard query", "err", err)
		return metrics.Filter{}, service.ErrParamInvalid
	}
	return q.Filter(c.Request.URL.Query()), nil
}

func sessionID(c *gin.Context) string {
	return c.GetString(consts.SessionIDKey)
}
