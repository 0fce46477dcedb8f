package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_dashboard/internal/classifier"
	"github.com/shenikar/disaster_dashboard/internal/trend"
)

// CreateReportRequest DTO для добавления поста, поля совпадают с выгрузкой скрейпера
// @Description DTO для добавления поста
type CreateReportRequest struct {
	Author       string   `json:"author" validate:"max=255"`
	Text         string   `json:"text" validate:"required"`
	OriginalText string   `json:"original_text,omitempty"`
	Keyword      string   `json:"keyword,omitempty" validate:"max=255"`
	URL          string   `json:"url" validate:"required,url"`
	CreatedAt    string   `json:"createdAt" validate:"required"`
	Location     *string  `json:"location,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"required_with=Latitude,omitempty,longitude"`
	Score        *int     `json:"score,omitempty"`
}

// ReportResponse DTO для ответа с информацией о посте
// @Description DTO для ответа с информацией о посте
type ReportResponse struct {
	ID           uuid.UUID           `json:"id"`
	Author       string              `json:"author"`
	Text         string              `json:"text"`
	OriginalText string              `json:"original_text,omitempty"`
	Keyword      string              `json:"keyword,omitempty"`
	URL          string              `json:"url"`
	CreatedAt    string              `json:"createdAt"`
	Location     *string             `json:"location,omitempty"`
	Latitude     *float64            `json:"latitude,omitempty"`
	Longitude    *float64            `json:"longitude,omitempty"`
	Score        *int                `json:"score,omitempty"`
	Category     classifier.Category `json:"category"`
	IngestedAt   time.Time           `json:"ingested_at"`
}

// CreateReportResponse DTO ответа на добавление поста
// @Description Created=false означает, что пост с таким URL уже сохранен, report в этом случае не возвращается
type CreateReportResponse struct {
	Created bool            `json:"created"`
	Report  *ReportResponse `json:"report,omitempty"`
}

// LocationResponse DTO точки на карте
// @Description DTO точки на карте
type LocationResponse struct {
	ID        uuid.UUID           `json:"id"`
	Text      string              `json:"text"`
	URL       string              `json:"url"`
	Location  *string             `json:"location,omitempty"`
	Latitude  float64             `json:"latitude"`
	Longitude float64             `json:"longitude"`
	Category  classifier.Category `json:"category"`
	Color     classifier.Color    `json:"color"`
}

// TrendSeriesResponse DTO серии графика
type TrendSeriesResponse struct {
	Category classifier.Category `json:"category"`
	Counts   []int               `json:"counts"`
	Color    classifier.Color    `json:"color"`
}

// TrendResponse DTO графика по времени
// @Description Labels и Buckets идут в одном порядке, Counts каждой серии выровнены по ним
type TrendResponse struct {
	Labels  []string              `json:"labels"`
	Buckets []trend.Bucket        `json:"buckets"`
	Series  []TrendSeriesResponse `json:"series"`
	Skipped int                   `json:"skipped"`
}

// CategoryResponse DTO категории для легенды
type CategoryResponse struct {
	Category classifier.Category `json:"category"`
	Keywords []string            `json:"keywords"`
	Color    classifier.Color    `json:"color"`
}

// ClassifyRequest DTO для классификации произвольного текста
// @Description Пустой текст получает категорию по умолчанию
type ClassifyRequest struct {
	Text string `json:"text" validate:"max=10000"`
}

// ClassifyResponse DTO результата классификации
type ClassifyResponse struct {
	Category classifier.Category `json:"category"`
}

// PurgeResponse DTO результата удаления постов с нулевой оценкой
type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Total     int `json:"total"`
	Scored    int `json:"scored"`
	Unscored  int `json:"unscored"`
	ZeroScore int `json:"zero_score"`
}
