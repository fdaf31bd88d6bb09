package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"humanizer-service/internal/core/domain"
)

func TestCreatePreset(t *testing.T) {
	_, presets, _, r := setupRouter()

	presets.On("Create", mock.Anything, mock.AnythingOfType("*domain.Preset")).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":       "essay",
		"intensity":  4,
		"deep_think": true,
		"cycles":     6,
	})
	req, _ := http.NewRequest("POST", "/api/v1/humanizer/presets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "essay", resp["name"])
	assert.Equal(t, true, resp["deep_think"])
}

func TestCreatePreset_NameConflict(t *testing.T) {
	_, presets, _, r := setupRouter()

	presets.On("Create", mock.Anything, mock.Anything).Return(domain.ErrPresetNameConflict)

	body, _ := json.Marshal(map[string]interface{}{"name": "essay"})
	req, _ := http.NewRequest("POST", "/api/v1/humanizer/presets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreatePreset_MissingName(t *testing.T) {
	_, _, _, r := setupRouter()

	req, _ := http.NewRequest("POST", "/api/v1/humanizer/presets", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPresetByName(t *testing.T) {
	_, presets, _, r := setupRouter()

	presets.On("GetByName", mock.Anything, "essay").Return(&domain.Preset{
		ID: uuid.New(), Name: "essay", Intensity: 3, Cycles: 5,
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/humanizer/preset?name=essay", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetPresetByName_MissingParam(t *testing.T) {
	_, _, _, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/humanizer/preset", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePreset(t *testing.T) {
	_, presets, _, r := setupRouter()

	id := uuid.New()
	presets.On("GetByID", mock.Anything, id).Return(&domain.Preset{
		ID: id, Name: "essay", Intensity: 3, Cycles: 5,
	}, nil)
	presets.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Preset) bool {
		return p.Intensity == 5
	})).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"intensity": 5})
	req, _ := http.NewRequest("PATCH", "/api/v1/humanizer/presets/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletePreset_NotFound(t *testing.T) {
	_, presets, _, r := setupRouter()

	id := uuid.New()
	presets.On("GetByID", mock.Anything, id).Return(nil, domain.ErrPresetNotFound)

	req, _ := http.NewRequest("DELETE", "/api/v1/humanizer/presets/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPresets(t *testing.T) {
	_, presets, _, r := setupRouter()

	presets.On("List", mock.Anything).Return([]*domain.Preset{
		{ID: uuid.New(), Name: "essay", Intensity: 3, Cycles: 5},
		{ID: uuid.New(), Name: "thorough", Intensity: 5, DeepThink: true, Cycles: 8},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/humanizer/presets", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(2), resp["total"])
}
