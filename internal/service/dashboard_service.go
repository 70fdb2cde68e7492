package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/export"
	"Pulseboard/internal/pkg/metrics"
	"context"
	log "log/slog"
)

type DashboardService interface {
	// Dashboard 按过滤条件重算看板
	Dashboard(ctx context.Context, sessionID string, filter metrics.Filter) (*dto.DashboardDTO, error)
	// Export 导出排行榜或结算表，name 取 leaderboard | payouts，format 取 csv | xlsx
	// 排行榜跟随过滤条件，结算表始终基于全量达人
	Export(ctx context.Context, sessionID string, filter metrics.Filter, name string, format string) (*dto.ExportFileDTO, error)
}

type dashboardServiceImpl struct {
	datasetSvc DatasetService
	currency   string
}

func NewDashboardService(datasetSvc DatasetService, currency string) DashboardService {
	return &dashboardServiceImpl{
		datasetSvc: datasetSvc,
		currency:   currency,
	}
}

func (s *dashboardServiceImpl) Dashboard(ctx context.Context, sessionID string, filter metrics.Filter) (*dto.DashboardDTO, error) {
	sess, err := s.datasetSvc.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	status, err := toStatusDTO(sess)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardDTO{
		Dataset:  status,
		Currency: s.currency,
		View:     metrics.Compute(sess.Tables, filter),
	}, nil
}

func (s *dashboardServiceImpl) Export(ctx context.Context, sessionID string, filter metrics.Filter, name string, format string) (*dto.ExportFileDTO, error) {
	if format != consts.ExportFormatCSV && format != consts.ExportFormatXLSX {
		return nil, ErrExportFormat
	}

	sess, err := s.datasetSvc.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var table *export.Table
	switch name {
	case "leaderboard":
		view := metrics.Compute(sess.Tables, filter)
		table = export.LeaderboardTable(view.Leaderboard)
	case "payouts":
		table = export.PayoutTable(metrics.PayoutJoin(sess.Tables.Payouts, sess.Tables.Influencers))
	default:
		return nil, ErrExportNotFound
	}

	file := &dto.ExportFileDTO{FileName: name + "." + format}
	if format == consts.ExportFormatCSV {
		file.ContentType = export.ContentTypeCSV
		file.Data, err = export.CSVBytes(table)
	} else {
		file.ContentType = export.ContentTypeXLSX
		file.Data, err = export.XLSXBytes(table)
	}
	if err != nil {
		log.ErrorContext(ctx, "failed to export table", "table", name, "format", format, "err", err)
		return nil, UnExpectedError
	}
	return file, nil
}
