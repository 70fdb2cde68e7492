package wire

import (
	"Pulseboard/internal/api"
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/handler"
	"Pulseboard/internal/job"
	"Pulseboard/internal/pkg/cron"
	"Pulseboard/internal/pkg/dataset"
	"Pulseboard/internal/pkg/minio"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/repository"
	"Pulseboard/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

func BuildApplication(cfg *config.Config) (*ApplicationContainer, error) {
	ttl := time.Duration(cfg.Session.TTL) * time.Second

	var sessionRepo repository.SessionRepo
	switch cfg.Session.Store {
	case "redis":
		sessionRepo = repository.NewRedisSessionRepo(redis.GetRdbClient(), ttl)
	default:
		sessionRepo = repository.NewMemorySessionRepo(ttl)
	}

	datasetSvc := service.NewDatasetService(sessionRepo, DefaultSource(cfg))
	dashboardSvc := service.NewDashboardService(datasetSvc, cfg.Server.Currency)

	handlers := &api.HandlersGroup{
		PageHandler:      handler.NewPageHandler(dashboardSvc),
		DashboardHandler: handler.NewDashboardHandler(dashboardSvc),
		DatasetHandler:   handler.NewDatasetHandler(datasetSvc, cfg.Upload.MaxFileSize),
	}

	router := api.SetupRouter(handlers, cfg)

	cronMgr := cron.NewCronManager(cfg.Cron.SessionSweep, job.NewSessionSweepJob(datasetSvc))

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}

// DefaultSource 新会话的初始数据源，sample 返回 nil
func DefaultSource(cfg *config.Config) dataset.Source {
	switch cfg.Dataset.Source {
	case "dir":
		return dataset.NewDirSource(cfg.Dataset.Dir)
	case "minio":
		return dataset.NewMinioSource(minio.Client, minio.DatasetBucket, cfg.MinIO.Prefix)
	case "http":
		urls := map[dataset.Kind]string{
			dataset.KindInfluencers: cfg.Dataset.HTTP.Influencers,
			dataset.KindPosts:       cfg.Dataset.HTTP.Posts,
			dataset.KindCampaigns:   cfg.Dataset.HTTP.Campaigns,
			dataset.KindPayouts:     cfg.Dataset.HTTP.Payouts,
		}
		return dataset.NewHTTPSource(urls, time.Duration(cfg.Dataset.HTTP.Timeout)*time.Second)
	default:
		return nil
	}
}
