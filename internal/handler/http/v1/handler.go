package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/disaster_dashboard/internal/config"
	"github.com/shenikar/disaster_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService service.ReportService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(reportService service.ReportService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService: reportService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Add a report
// @Description Classify and store a disaster report. A report with an already known URL is ignored. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body CreateReportRequest true "Report from the scraper"
// @Success 201 {object} CreateReportResponse "Report created"
// @Success 200 {object} CreateReportResponse "Duplicate URL, nothing stored"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input CreateReportRequest
	log := h.logger.WithField("method", "createReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToReportModel(input)
	created, err := h.reportService.AddReport(c.Request.Context(), model)
	if err != nil {
		log.WithError(err).Error("Failed to add report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if !created {
		c.JSON(http.StatusOK, CreateReportResponse{Created: false})
		return
	}
	resp := ModelToReportResponse(model)
	c.JSON(http.StatusCreated, CreateReportResponse{Created: true, Report: &resp})
}

// @Summary Get a list of reports
// @Description Get a paginated list of reports, newest first, optionally filtered by category
// @Tags Reports
// @Produce json
// @Param category query string false "Category, empty or \"All Disasters\" for all"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} ReportResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	reports, err := h.reportService.ListReports(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get reports by search keyword
// @Description Get reports collected for a scraper search keyword
// @Tags Reports
// @Produce json
// @Param keyword path string true "Search keyword"
// @Success 200 {array} ReportResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/keyword/{keyword} [get]
func (h *Handler) listByKeyword(c *gin.Context) {
	keyword := c.Param("keyword")
	log := h.logger.WithField("method", "listByKeyword").WithField("keyword", keyword)

	reports, err := h.reportService.ListByKeyword(c.Request.Context(), keyword)
	if err != nil {
		log.WithError(err).Error("Failed to list reports by keyword from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report locations
// @Description Get reports with coordinates for the map and heatmap views
// @Tags Reports
// @Produce json
// @Param category query string false "Category, empty or \"All Disasters\" for all"
// @Success 200 {array} LocationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	log := h.logger.WithField("method", "listLocations")

	reports, err := h.reportService.ListLocations(c.Request.Context(), c.Query("category"))
	if err != nil {
		log.WithError(err).Error("Failed to list locations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToLocationResponses(reports, h.reportService.Color))
}

// @Summary Delete zero score reports
// @Description Delete all reports whose sentiment score is 0. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} PurgeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/zero-score [delete]
func (h *Handler) purgeZeroScore(c *gin.Context) {
	log := h.logger.WithField("method", "purgeZeroScore")

	deleted, err := h.reportService.PurgeZeroScore(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to purge zero score reports in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, PurgeResponse{Deleted: deleted})
}

// @Summary Get report statistics
// @Description Get total, scored, unscored and zero score report counts. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.reportService.Stats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		Total:     stats.Total,
		Scored:    stats.Scored,
		Unscored:  stats.Unscored,
		ZeroScore: stats.ZeroScore,
	})
}

// @Summary Get report trends
// @Description Get per-category report counts in fixed time buckets over the trailing window
// @Tags Trends
// @Produce json
// @Success 200 {object} TrendResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trends [get]
func (h *Handler) getTrends(c *gin.Context) {
	log := h.logger.WithField("method", "getTrends")

	t, err := h.reportService.GetTrend(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get trend from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, TrendToResponse(t, h.reportService.Color))
}

// @Summary Get categories
// @Description Get disaster categories in rule order with their keywords and colors, fallback category last
// @Tags Classifier
// @Produce json
// @Success 200 {array} CategoryResponse
// @Router /categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesToResponses(h.reportService.Categories()))
}

// @Summary Classify text
// @Description Get the disaster category the keyword rules assign to a text
// @Tags Classifier
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Text to classify"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /classify [post]
func (h *Handler) classify(c *gin.Context) {
	var input ClassifyRequest
	log := h.logger.WithField("method", "classify")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ClassifyResponse{Category: h.reportService.Classify(input.Text)})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
