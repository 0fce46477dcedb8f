package trend

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shenikar/disaster_dashboard/internal/classifier"
)

const (
	DefaultWindow      = 24 * time.Hour
	DefaultBucketWidth = time.Hour

	// LabelLayout - подпись корзины на графике, например "Mar 3, 02 PM"
	LabelLayout = "Jan 2, 03 PM"
)

// Event - классифицированное событие с исходной строкой времени
type Event struct {
	Timestamp string
	Category  classifier.Category
}

// Bucket - полуинтервал [Start, Start+width)
type Bucket struct {
	Start time.Time `json:"start"`
	Label string    `json:"label"`
}

// Series - количество событий категории по корзинам
type Series struct {
	Category classifier.Category `json:"category"`
	Counts   []int               `json:"counts"`
}

// Trend - результат расчета для графика
type Trend struct {
	Buckets []Bucket `json:"buckets"`
	Series  []Series `json:"series"`
	// Skipped - события с нераспознанным временем
	Skipped int `json:"skipped"`
}

// Labels возвращает подписи корзин по порядку
func (t Trend) Labels() []string {
	labels := make([]string, len(t.Buckets))
	for i, b := range t.Buckets {
		labels[i] = b.Label
	}
	return labels
}

// Bucketer раскладывает события по корзинам фиксированной ширины в окне [now-window, now)
type Bucketer struct {
	window   time.Duration
	width    time.Duration
	location *time.Location
	order    []classifier.Category
}

type Option func(*Bucketer)

func WithWindow(d time.Duration) Option {
	return func(b *Bucketer) { b.window = d }
}

func WithBucketWidth(d time.Duration) Option {
	return func(b *Bucketer) { b.width = d }
}

// WithLocation задает часовой пояс подписей
func WithLocation(loc *time.Location) Option {
	return func(b *Bucketer) { b.location = loc }
}

// WithOrder задает порядок серий в результате
func WithOrder(order []classifier.Category) Option {
	return func(b *Bucketer) { b.order = append([]classifier.Category(nil), order...) }
}

// NewBucketer создает Bucketer. Окно должно быть кратно ширине корзины.
func NewBucketer(opts ...Option) (*Bucketer, error) {
	b := &Bucketer{
		window:   DefaultWindow,
		width:    DefaultBucketWidth,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.window <= 0 || b.width <= 0 {
		return nil, errors.New("window and bucket width must be positive")
	}
	if b.window%b.width != 0 {
		return nil, fmt.Errorf("window %s is not a multiple of bucket width %s", b.window, b.width)
	}
	if b.location == nil {
		b.location = time.UTC
	}
	return b, nil
}

func (b *Bucketer) Window() time.Duration { return b.window }

func (b *Bucketer) BucketWidth() time.Duration { return b.width }

// Compute считает события по категориям и корзинам.
// Событие ровно в now-window попадает в корзину 0, событие ровно в now не учитывается.
// Категории с нулевой суммой в результат не попадают.
func (b *Bucketer) Compute(now time.Time, events []Event) Trend {
	n := int(b.window / b.width)
	start := now.Add(-b.window)

	buckets := make([]Bucket, n)
	for i := range buckets {
		bs := start.Add(time.Duration(i) * b.width)
		buckets[i] = Bucket{Start: bs, Label: bs.In(b.location).Format(LabelLayout)}
	}

	counts := make(map[classifier.Category][]int)
	skipped := 0
	for _, ev := range events {
		ts, err := ParseTimestamp(ev.Timestamp)
		if err != nil {
			skipped++
			continue
		}
		if ts.Before(start) || !ts.Before(now) {
			continue
		}
		idx := int(ts.Sub(start) / b.width)

		series, ok := counts[ev.Category]
		if !ok {
			series = make([]int, n)
			counts[ev.Category] = series
		}
		series[idx]++
	}

	return Trend{
		Buckets: buckets,
		Series:  b.orderSeries(counts),
		Skipped: skipped,
	}
}

func (b *Bucketer) orderSeries(counts map[classifier.Category][]int) []Series {
	out := make([]Series, 0, len(counts))
	used := make(map[classifier.Category]struct{}, len(counts))
	for _, cat := range b.order {
		if _, dup := used[cat]; dup {
			continue
		}
		if c, ok := counts[cat]; ok {
			out = append(out, Series{Category: cat, Counts: c})
			used[cat] = struct{}{}
		}
	}

	var rest []classifier.Category
	for cat := range counts {
		if _, ok := used[cat]; !ok {
			rest = append(rest, cat)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, cat := range rest {
		out = append(out, Series{Category: cat, Counts: counts[cat]})
	}
	return out
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp разбирает время поста. Время без зоны считается UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
