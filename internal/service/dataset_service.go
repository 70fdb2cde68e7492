package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/dataset"
	"Pulseboard/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

// OriginUpload 浏览器上传的数据来源标识
const OriginUpload = "upload"

type DatasetService interface {
	// Load 获取会话数据集，会话不存在时用默认数据源初始化
	Load(ctx context.Context, sessionID string) (*model.Session, error)
	// Status 会话数据集状态
	Status(ctx context.Context, sessionID string) (*dto.DatasetStatusDTO, error)
	// Upload 用上传的四张表替换会话数据集，缺表或解析失败时整体回退到示例数据
	Upload(ctx context.Context, sessionID string, files map[dataset.Kind][]byte) (*dto.DatasetStatusDTO, error)
	// Reset 重新从默认数据源加载
	Reset(ctx context.Context, sessionID string) (*dto.DatasetStatusDTO, error)
	// Sweep 清理过期会话
	Sweep(ctx context.Context) (int, error)
}

type datasetServiceImpl struct {
	sessionRepo   repository.SessionRepo
	defaultSource dataset.Source
	now           func() time.Time
}

// NewDatasetService defaultSource 为 nil 时新会话直接使用示例数据
func NewDatasetService(sessionRepo repository.SessionRepo, defaultSource dataset.Source) DatasetService {
	return &datasetServiceImpl{
		sessionRepo:   sessionRepo,
		defaultSource: defaultSource,
		now:           time.Now,
	}
}

func (s *datasetServiceImpl) Load(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, ErrSessionMissing
	}
	sess, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		log.ErrorContext(ctx, "failed to get session", "session_id", sessionID, "err", err)
		return nil, UnExpectedError
	}
	if sess == nil {
		return s.store(ctx, sessionID, dataset.Resolve(ctx, s.defaultSource))
	}

	// 续期，会话内容本身不可变，复制一份再保存
	touched := *sess
	touched.UpdatedAt = s.now()
	if err = s.sessionRepo.Save(ctx, &touched); err != nil {
		log.WarnContext(ctx, "failed to refresh session", "session_id", sessionID, "err", err)
	}
	return &touched, nil
}

func (s *datasetServiceImpl) Status(ctx context.Context, sessionID string) (*dto.DatasetStatusDTO, error) {
	sess, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toStatusDTO(sess)
}

func (s *datasetServiceImpl) Upload(ctx context.Context, sessionID string, files map[dataset.Kind][]byte) (*dto.DatasetStatusDTO, error) {
	if sessionID == "" {
		return nil, ErrSessionMissing
	}
	res := dataset.Resolve(ctx, dataset.NewReaderSource(OriginUpload, files))
	sess, err := s.store(ctx, sessionID, res)
	if err != nil {
		return nil, err
	}
	return toStatusDTO(sess)
}

func (s *datasetServiceImpl) Reset(ctx context.Context, sessionID string) (*dto.DatasetStatusDTO, error) {
	if sessionID == "" {
		return nil, ErrSessionMissing
	}
	sess, err := s.store(ctx, sessionID, dataset.Resolve(ctx, s.defaultSource))
	if err != nil {
		return nil, err
	}
	return toStatusDTO(sess)
}

func (s *datasetServiceImpl) Sweep(ctx context.Context) (int, error) {
	return s.sessionRepo.Sweep(ctx, s.now())
}

func (s *datasetServiceImpl) store(ctx context.Context, sessionID string, res dataset.Result) (*model.Session, error) {
	sess := &model.Session{
		ID:        sessionID,
		Tables:    res.Tables,
		Origin:    res.Origin,
		Fallback:  res.Fallback,
		Warning:   res.Warning,
		UpdatedAt: s.now(),
	}
	if err := s.sessionRepo.Save(ctx, sess); err != nil {
		log.ErrorContext(ctx, "failed to save session", "session_id", sessionID, "err", err)
		return nil, ErrSessionStoreFailed
	}
	return sess, nil
}

func toStatusDTO(sess *model.Session) (*dto.DatasetStatusDTO, error) {
	status := &dto.DatasetStatusDTO{}
	if err := copier.Copy(status, sess); err != nil {
		return nil, fmt.Errorf("copy session status: %w", err)
	}
	status.Counts = sess.Tables.Counts()
	return status, nil
}
