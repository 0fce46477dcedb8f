package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_dashboard/internal/classifier"
)

// Report - пост о стихийном бедствии из внешнего источника
type Report struct {
	ID           uuid.UUID           `json:"id"`
	Author       string              `json:"author"`
	Text         string              `json:"text"`
	OriginalText string              `json:"original_text"`
	Keyword      string              `json:"keyword"`
	URL          string              `json:"url"`
	CreatedAt    string              `json:"created_at"` // время поста в том виде, в котором его прислал источник
	Location     *string             `json:"location,omitempty"`
	Latitude     *float64            `json:"latitude,omitempty"`
	Longitude    *float64            `json:"longitude,omitempty"`
	Score        *int                `json:"score,omitempty"` // оценка модели, считается вне сервиса
	Category     classifier.Category `json:"category"`
	PostedAt     *time.Time          `json:"posted_at,omitempty"` // разобранный CreatedAt, nil если формат не распознан
	IngestedAt   time.Time           `json:"ingested_at"`
}

// HasCoordinates сообщает, можно ли показать пост на карте
func (r *Report) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// ReportFilter - параметры выборки списка постов
type ReportFilter struct {
	Category classifier.Category
	Page     int
	PageSize int
}

// ReportStats - сводка по оценкам постов
type ReportStats struct {
	Total     int `json:"total"`
	Scored    int `json:"scored"`
	Unscored  int `json:"unscored"`
	ZeroScore int `json:"zero_score"`
}

// CategoryInfo - категория с ключевыми словами и цветом для легенды на фронтенде
type CategoryInfo struct {
	Category classifier.Category `json:"category"`
	Keywords []string            `json:"keywords"`
	Color    classifier.Color    `json:"color"`
}
