package v1

import (
	"github.com/shenikar/disaster_dashboard/internal/classifier"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/trend"
)

// DTOToReportModel преобразует DTO создания в доменную модель
func DTOToReportModel(dto CreateReportRequest) *models.Report {
	return &models.Report{
		Author:       dto.Author,
		Text:         dto.Text,
		OriginalText: dto.OriginalText,
		Keyword:      dto.Keyword,
		URL:          dto.URL,
		CreatedAt:    dto.CreatedAt,
		Location:     dto.Location,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		Score:        dto.Score,
	}
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.Report) ReportResponse {
	return ReportResponse{
		ID:           model.ID,
		Author:       model.Author,
		Text:         model.Text,
		OriginalText: model.OriginalText,
		Keyword:      model.Keyword,
		URL:          model.URL,
		CreatedAt:    model.CreatedAt,
		Location:     model.Location,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		Score:        model.Score,
		Category:     model.Category,
		IngestedAt:   model.IngestedAt,
	}
}

// ModelsToReportResponses преобразует слайс моделей в слайс DTO
func ModelsToReportResponses(models []*models.Report) []ReportResponse {
	responses := make([]ReportResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

// ModelsToLocationResponses оставляет только посты с координатами
func ModelsToLocationResponses(models []*models.Report, color func(classifier.Category) classifier.Color) []LocationResponse {
	responses := make([]LocationResponse, 0, len(models))
	for _, model := range models {
		if !model.HasCoordinates() {
			continue
		}
		responses = append(responses, LocationResponse{
			ID:        model.ID,
			Text:      model.Text,
			URL:       model.URL,
			Location:  model.Location,
			Latitude:  *model.Latitude,
			Longitude: *model.Longitude,
			Category:  model.Category,
			Color:     color(model.Category),
		})
	}
	return responses
}

// TrendToResponse добавляет к тренду подписи и цвета серий
func TrendToResponse(t *trend.Trend, color func(classifier.Category) classifier.Color) TrendResponse {
	series := make([]TrendSeriesResponse, len(t.Series))
	for i, s := range t.Series {
		series[i] = TrendSeriesResponse{
			Category: s.Category,
			Counts:   s.Counts,
			Color:    color(s.Category),
		}
	}
	return TrendResponse{
		Labels:  t.Labels(),
		Buckets: t.Buckets,
		Series:  series,
		Skipped: t.Skipped,
	}
}

// CategoriesToResponses преобразует категории классификатора в DTO
func CategoriesToResponses(infos []models.CategoryInfo) []CategoryResponse {
	responses := make([]CategoryResponse, len(infos))
	for i, info := range infos {
		keywords := info.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		responses[i] = CategoryResponse{
			Category: info.Category,
			Keywords: keywords,
			Color:    info.Color,
		}
	}
	return responses
}
