package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/dataset"
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DatasetHandler struct {
	datasetSvc  service.DatasetService
	maxFileSize int64
}

func NewDatasetHandler(datasetSvc service.DatasetService, maxFileSize int64) *DatasetHandler {
	return &DatasetHandler{
		datasetSvc:  datasetSvc,
		maxFileSize: maxFileSize,
	}
}

// Status 当前会话数据集状态
func (h *DatasetHandler) Status(c *gin.Context) {
	status, err := h.datasetSvc.Status(c.Request.Context(), sessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}

// Upload 上传四张 CSV，表单字段名即表名
func (h *DatasetHandler) Upload(c *gin.Context) {
	status, err := h.upload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}

// Reset 恢复默认数据源
func (h *DatasetHandler) Reset(c *gin.Context) {
	status, err := h.datasetSvc.Reset(c.Request.Context(), sessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}

// UploadForm 页面表单上传，完成后回到看板
func (h *DatasetHandler) UploadForm(c *gin.Context) {
	if _, err := h.upload(c); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// ResetForm 页面表单重置，完成后回到看板
func (h *DatasetHandler) ResetForm(c *gin.Context) {
	if _, err := h.datasetSvc.Reset(c.Request.Context(), sessionID(c)); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *DatasetHandler) upload(c *gin.Context) (*dto.DatasetStatusDTO, error) {
	ctx := c.Request.Context()
	files := make(map[dataset.Kind][]byte, len(dataset.Kinds))
	for _, kind := range dataset.Kinds {
		header, err := c.FormFile(string(kind))
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			log.WarnContext(ctx, "invalid upload form", "err", err)
			return nil, service.ErrParamInvalid
		}
		if !util.IsCSVFile(header.Filename) {
			return nil, service.ErrFileNotSupported
		}
		b, err := util.ReadFormFile(header, h.maxFileSize)
		if err != nil {
			if errors.Is(err, util.ErrFileTooLarge) {
				return nil, service.ErrFileTooLarge
			}
			log.ErrorContext(ctx, "failed to read upload", "kind", kind, "err", err)
			return nil, service.UnExpectedError
		}
		files[kind] = b
	}
	return h.datasetSvc.Upload(ctx, sessionID(c), files)
}
