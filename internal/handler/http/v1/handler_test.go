package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/disaster_dashboard/internal/classifier"
	"github.com/shenikar/disaster_dashboard/internal/config"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/service/mocks"
	"github.com/shenikar/disaster_dashboard/internal/trend"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockReportService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockReportService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:     []string{"test-api-key"},
		CORSOrigins: []string{"http://localhost:5173"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware(cfg.CORSOrigins))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ptr[T any](v T) *T { return &v }

func validCreateRequest() CreateReportRequest {
	return CreateReportRequest{
		Author:    "reporter",
		Text:      "Earthquake shakes the coast",
		Keyword:   "earthquake",
		URL:       "https://example.com/post/1",
		CreatedAt: "2025-03-10T12:00:00Z",
		Latitude:  ptr(35.6),
		Longitude: ptr(139.7),
		Score:     ptr(1),
	}
}

func TestCreateReport_Created(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := validCreateRequest()

	mockService.EXPECT().
		AddReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Report) (bool, error) {
			assert.Equal(t, reqBody.URL, r.URL)
			assert.Equal(t, reqBody.CreatedAt, r.CreatedAt)
			r.ID = reportID
			r.Category = classifier.Earthquake
			return true, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CreateReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Created)
	require.NotNil(t, resp.Report)
	assert.Equal(t, reportID, resp.Report.ID)
	assert.Equal(t, classifier.Earthquake, resp.Report.Category)
}

func TestCreateReport_Duplicate(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AddReport(gomock.Any(), gomock.Any()).Return(false, nil).Times(1)

	bodyBytes, _ := json.Marshal(validCreateRequest())
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CreateReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Created)
	assert.Nil(t, resp.Report)
	assert.NotContains(t, w.Body.String(), `"report"`)
}

func TestCreateReport_WithoutCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		AddReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Report) (bool, error) {
			assert.False(t, r.HasCoordinates())
			return true, nil
		}).Times(1)

	reqBody := validCreateRequest()
	reqBody.Latitude, reqBody.Longitude = nil, nil
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateReport_EquatorCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AddReport(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)

	reqBody := validCreateRequest()
	reqBody.Latitude, reqBody.Longitude = ptr(0.0), ptr(0.0)
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateReport_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AddReport(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(`{"text": "test"`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateReport_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreateReportRequest)
		wantErr string
	}{
		{"missing text", func(r *CreateReportRequest) { r.Text = "" }, "'Text' failed on the 'required' tag"},
		{"bad url", func(r *CreateReportRequest) { r.URL = "not a url" }, "'URL' failed on the 'url' tag"},
		{"latitude out of range", func(r *CreateReportRequest) { r.Latitude = ptr(123.0) }, "'Latitude' failed on the 'latitude' tag"},
		{"latitude without longitude", func(r *CreateReportRequest) { r.Longitude = nil }, "'Longitude' failed on the 'required_with' tag"},
		{"longitude without latitude", func(r *CreateReportRequest) { r.Latitude = nil }, "'Latitude' failed on the 'required_with' tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().AddReport(gomock.Any(), gomock.Any()).Times(0)

			reqBody := validCreateRequest()
			tt.mutate(&reqBody)
			bodyBytes, _ := json.Marshal(reqBody)
			w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes), apiKeyHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}

func TestCreateReport_RequiresAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().AddReport(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(validCreateRequest())
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateReport_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AddReport(gomock.Any(), gomock.Any()).Return(false, errors.New("service error")).Times(1)

	bodyBytes, _ := json.Marshal(validCreateRequest())
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes), apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListReports_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := []*models.Report{
		{ID: uuid.New(), Text: "Flood in the valley", Category: classifier.Flood},
		{ID: uuid.New(), Text: "Flooding downtown", Category: classifier.Flood},
	}

	mockService.EXPECT().ListReports(gomock.Any(), "Flood", 2, 10).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports?category=Flood&page=2&pageSize=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, expected[0].ID, resp[0].ID)
}

func TestListReports_DefaultQuery(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListReports(gomock.Any(), "", 1, 20).Return([]*models.Report{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListReports_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListReports(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("service error")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListByKeyword(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListByKeyword(gomock.Any(), "hurricane").Return([]*models.Report{{Keyword: "hurricane"}}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/keyword/hurricane", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"keyword":"hurricane"`)
}

func TestListLocations_SkipsReportsWithoutCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	withCoords := &models.Report{ID: uuid.New(), Category: classifier.Wildfire, Latitude: ptr(34.0), Longitude: ptr(-118.2)}
	withoutCoords := &models.Report{ID: uuid.New(), Category: classifier.Wildfire}
	color := classifier.DefaultPalette()[classifier.Wildfire]

	mockService.EXPECT().ListLocations(gomock.Any(), "All Disasters").Return([]*models.Report{withCoords, withoutCoords}, nil).Times(1)
	mockService.EXPECT().Color(classifier.Wildfire).Return(color).AnyTimes()

	w := makeRequest(router, "GET", "/api/v1/reports/locations?category=All+Disasters", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []LocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, withCoords.ID, resp[0].ID)
	assert.Equal(t, color, resp[0].Color)
}

func TestPurgeZeroScore(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().PurgeZeroScore(gomock.Any()).Return(int64(5), nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/reports/zero-score", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":5}`, w.Body.String())
}

func TestPurgeZeroScore_RequiresAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().PurgeZeroScore(gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/reports/zero-score", nil, map[string]string{"Authorization": "Bearer wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Stats(gomock.Any()).Return(&models.ReportStats{Total: 10, Scored: 8, Unscored: 2, ZeroScore: 3}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/stats", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":10,"scored":8,"unscored":2,"zero_score":3}`, w.Body.String())
}

func TestGetStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("service error")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/stats", nil, apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetTrends_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	start := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	tr := &trend.Trend{
		Buckets: []trend.Bucket{
			{Start: start, Label: "Mar 10, 01 PM"},
			{Start: start.Add(time.Hour), Label: "Mar 10, 02 PM"},
		},
		Series:  []trend.Series{{Category: classifier.Tornado, Counts: []int{0, 3}}},
		Skipped: 1,
	}
	color := classifier.DefaultPalette()[classifier.Tornado]

	mockService.EXPECT().GetTrend(gomock.Any()).Return(tr, nil).Times(1)
	mockService.EXPECT().Color(classifier.Tornado).Return(color).Times(1)

	w := makeRequest(router, "GET", "/api/v1/trends", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp TrendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Mar 10, 01 PM", "Mar 10, 02 PM"}, resp.Labels)
	require.Len(t, resp.Series, 1)
	assert.Equal(t, []int{0, 3}, resp.Series[0].Counts)
	assert.Equal(t, color, resp.Series[0].Color)
	assert.Equal(t, 1, resp.Skipped)
}

func TestGetTrends_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetTrend(gomock.Any()).Return(nil, errors.New("service error")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/trends", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListCategories(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Categories().Return([]models.CategoryInfo{
		{Category: classifier.Flood, Keywords: []string{"flood", "flooding"}},
		{Category: classifier.Disaster},
	}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, classifier.Disaster, resp[1].Category)
	assert.NotNil(t, resp[1].Keywords)
	assert.Empty(t, resp[1].Keywords)
}

func TestClassify(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Classify("Volcano erupts").Return(classifier.VolcanicEruption).Times(1)

	w := makeRequest(router, "POST", "/api/v1/classify", bytes.NewBufferString(`{"text":"Volcano erupts"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"category":"Volcanic Eruption"}`, w.Body.String())
}

func TestClassify_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Classify(gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/classify", bytes.NewBufferString(`{"text":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCORSMiddleware(t *testing.T) {
	_, _, router := newTestHandler(t)

	// Preflight с разрешенного origin
	w := makeRequest(router, "OPTIONS", "/api/v1/trends", nil, map[string]string{"Origin": "http://localhost:5173"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	// Чужой origin не получает заголовков
	w = makeRequest(router, "OPTIONS", "/api/v1/trends", nil, map[string]string{"Origin": "http://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_Wildcard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware([]string{"*"}))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Origin": "http://anything.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://anything.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPIKeyAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{"x-api-key header", map[string]string{"X-API-Key": "valid-key"}, http.StatusOK, ""},
		{"bearer token", map[string]string{"Authorization": "Bearer valid-key"}, http.StatusOK, ""},
		{"missing key", map[string]string{}, http.StatusUnauthorized, "API key required"},
		{"wrong scheme", map[string]string{"Authorization": "Basic valid-key"}, http.StatusUnauthorized, "API key required"},
		{"invalid key", map[string]string{"X-API-Key": "invalid-key"}, http.StatusUnauthorized, "Invalid API key"},
	}

	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{APIKeys: []string{"other-key", "valid-key"}}

	router := gin.New()
	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, "GET", "/test", nil, tt.headers)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}
