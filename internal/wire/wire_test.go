package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Pulseboard/internal/api/config"
	"Pulseboard/internal/pkg/dataset"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSource(t *testing.T) {
	cfg := config.Default()
	assert.Nil(t, DefaultSource(cfg))

	cfg.Dataset.Source = "dir"
	src := DefaultSource(cfg)
	require.NotNil(t, src)
	assert.Equal(t, "dir", src.Name())

	cfg.Dataset.Source = "http"
	src = DefaultSource(cfg)
	require.IsType(t, &dataset.HTTPSource{}, src)
}

func TestBuildApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	config.Cfg = cfg

	app, err := BuildApplication(cfg)
	require.NoError(t, err)
	require.NoError(t, app.CronMgr.RegisterJobs())

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
