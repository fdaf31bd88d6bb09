package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"humanizer-service/internal/core/domain"
	"humanizer-service/internal/core/services"
	"humanizer-service/internal/testutil"
)

func setupRouter() (*testutil.MockRewriteJobRepo, *testutil.MockPresetRepo, *testutil.MockLexiconRepo, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	jobs := new(testutil.MockRewriteJobRepo)
	presets := new(testutil.MockPresetRepo)
	lexRepo := new(testutil.MockLexiconRepo)

	lexiconSvc := services.NewLexiconService(lexRepo)
	rewriteSvc := services.NewRewriteService(jobs, presets, lexiconSvc, 1024, 42)
	presetSvc := services.NewPresetService(presets)
	statsSvc := services.NewStatsService(jobs)

	h := New(rewriteSvc, presetSvc, lexiconSvc, statsSvc)
	r := gin.New()
	api := r.Group("/api/v1/humanizer")
	h.RegisterRoutes(api)

	return jobs, presets, lexRepo, r
}

func TestCreateRewrite(t *testing.T) {
	jobs, _, lexRepo, r := setupRouter()

	lexRepo.On("ListAll", mock.Anything).Return([]*domain.LexiconEntry{}, nil)
	jobs.On("Create", mock.Anything, mock.AnythingOfType("*domain.RewriteJob")).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"text":      "The results are important.",
		"intensity": 3,
	})
	req, _ := http.NewRequest("POST", "/api/v1/humanizer/rewrites", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "standard", resp["mode"])
	assert.Equal(t, float64(3), resp["intensity"])
	assert.NotEmpty(t, resp["output"])
}

func TestCreateRewrite_MissingText(t *testing.T) {
	_, _, _, r := setupRouter()

	req, _ := http.NewRequest("POST", "/api/v1/humanizer/rewrites", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRewrite_InvalidIntensity(t *testing.T) {
	_, _, _, r := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"text":      "The results are important.",
		"intensity": 9,
	})
	req, _ := http.NewRequest("POST", "/api/v1/humanizer/rewrites", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRewrite_PresetNotFound(t *testing.T) {
	_, presets, _, r := setupRouter()

	presetID := uuid.New()
	presets.On("GetByID", mock.Anything, presetID).Return(nil, domain.ErrPresetNotFound)

	body, _ := json.Marshal(map[string]interface{}{
		"text":      "The results are important.",
		"preset_id": presetID.String(),
	})
	req, _ := http.NewRequest("POST", "/api/v1/humanizer/rewrites", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRewrites(t *testing.T) {
	jobs, _, _, r := setupRouter()

	stored := []*domain.RewriteJob{
		{
			ID: uuid.New(), CreatedAt: time.Now(),
			Mode: domain.ModeStandard, Intensity: 3, Cycles: 1,
			InputText: "in", OutputText: "out",
			InputChars: 2, OutputChars: 3, DurationMs: 1,
		},
	}
	jobs.On("List", mock.Anything, mock.AnythingOfType("output.JobListFilter")).Return(stored, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/humanizer/rewrites?limit=10&offset=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(1), resp["total"])
}

func TestGetRewrite(t *testing.T) {
	jobs, _, _, r := setupRouter()

	id := uuid.New()
	jobs.On("GetByID", mock.Anything, id).Return(&domain.RewriteJob{
		ID: id, CreatedAt: time.Now(),
		Mode: domain.ModeDeepThink, Intensity: 5, Cycles: 5,
		InputText: "in", OutputText: "out",
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/humanizer/rewrites/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "deep_think", resp["mode"])
}

func TestGetRewrite_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/humanizer/rewrites/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRewrite_NotFound(t *testing.T) {
	jobs, _, _, r := setupRouter()

	id := uuid.New()
	jobs.On("GetByID", mock.Anything, id).Return(nil, domain.ErrJobNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/humanizer/rewrites/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRewrite(t *testing.T) {
	jobs, _, _, r := setupRouter()

	id := uuid.New()
	jobs.On("Delete", mock.Anything, id).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/humanizer/rewrites/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetStats(t *testing.T) {
	jobs, _, _, r := setupRouter()

	jobs.On("Stats", mock.Anything).Return(&domain.RewriteStats{
		TotalJobs:       4,
		DeepThinkJobs:   1,
		AvgDurationMs:   3.5,
		JobsByIntensity: map[int]int{3: 4},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/humanizer/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(4), resp["total_jobs"])
	assert.Equal(t, float64(1), resp["deep_think_jobs"])
}
