package classifier

import (
	"errors"
	"fmt"
	"strings"
)

// Category - тип стихийного бедствия
type Category string

const (
	Avalanche        Category = "Avalanche"
	Blizzard         Category = "Blizzard"
	Drought          Category = "Drought"
	Duststorm        Category = "Duststorm"
	Earthquake       Category = "Earthquake"
	VolcanicEruption Category = "Volcanic Eruption"
	Flood            Category = "Flood"
	Hailstorm        Category = "Hailstorm"
	Hurricane        Category = "Hurricane"
	Landslide        Category = "Landslide"
	Tornado          Category = "Tornado"
	Wildfire         Category = "Wildfire"

	// Disaster - категория по умолчанию, если ни одно правило не сработало
	Disaster Category = "Disaster"
)

// KeywordRule связывает категорию с набором подстрок в нижнем регистре.
// Порядок правил важен: побеждает первое совпавшее.
type KeywordRule struct {
	Category Category `json:"category" yaml:"category"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Classifier относит текст ровно к одной категории.
// После создания не изменяется, безопасен для конкурентного использования.
type Classifier struct {
	rules    []KeywordRule
	fallback Category
	palette  Palette
}

// Option настраивает Classifier при создании
type Option func(*Classifier)

// WithFallback задает категорию для пустого текста и текста без совпадений
func WithFallback(c Category) Option {
	return func(cl *Classifier) {
		cl.fallback = c
	}
}

// WithPalette задает цвета категорий для отображения
func WithPalette(p Palette) Option {
	return func(cl *Classifier) {
		cl.palette = p.clone()
	}
}

// New создает классификатор с заданной таблицей правил
func New(rules []KeywordRule, opts ...Option) (*Classifier, error) {
	cl := &Classifier{
		fallback: Disaster,
		palette:  DefaultPalette(),
	}
	for _, opt := range opts {
		opt(cl)
	}
	if cl.fallback == "" {
		return nil, errors.New("fallback category must not be empty")
	}

	cl.rules = make([]KeywordRule, 0, len(rules))
	for i, rule := range rules {
		if rule.Category == "" {
			return nil, fmt.Errorf("rule %d: category must not be empty", i)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d (%s): no keywords", i, rule.Category)
		}
		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				// пустая подстрока совпала бы с любым текстом
				return nil, fmt.Errorf("rule %d (%s): empty keyword", i, rule.Category)
			}
			keywords = append(keywords, kw)
		}
		cl.rules = append(cl.rules, KeywordRule{Category: rule.Category, Keywords: keywords})
	}
	return cl, nil
}

// Default возвращает классификатор со встроенной таблицей правил
func Default() *Classifier {
	cl, err := New(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("classifier: default rules are invalid: %v", err))
	}
	return cl
}

// DefaultRules возвращает копию встроенной таблицы правил
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{Category: Avalanche, Keywords: []string{"avalanche"}},
		{Category: Blizzard, Keywords: []string{"blizzard"}},
		{Category: Drought, Keywords: []string{"drought"}},
		{Category: Duststorm, Keywords: []string{"duststorm"}},
		{Category: Earthquake, Keywords: []string{"earthquake"}},
		{Category: VolcanicEruption, Keywords: []string{"eruption", "volcano"}},
		{Category: Flood, Keywords: []string{"flood", "flooding"}},
		{Category: Hailstorm, Keywords: []string{"hailstorm"}},
		{Category: Hurricane, Keywords: []string{"hurricane"}},
		{Category: Landslide, Keywords: []string{"landslide"}},
		{Category: Tornado, Keywords: []string{"tornado"}},
		// "fire" совпадает и с "firefighter", "fireworks": известная неточность подстрочного поиска
		{Category: Wildfire, Keywords: []string{"wildfire", "fire"}},
	}
}

// Classify возвращает категорию текста.
// Пустой текст или отсутствие совпадений дают категорию по умолчанию.
func (c *Classifier) Classify(text string) Category {
	if text == "" {
		return c.fallback
	}
	lower := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	return c.fallback
}

// Categories возвращает все категории в порядке правил, категория по умолчанию последняя
func (c *Classifier) Categories() []Category {
	seen := make(map[Category]struct{}, len(c.rules)+1)
	out := make([]Category, 0, len(c.rules)+1)
	for _, rule := range c.rules {
		if _, ok := seen[rule.Category]; ok {
			continue
		}
		seen[rule.Category] = struct{}{}
		out = append(out, rule.Category)
	}
	if _, ok := seen[c.fallback]; !ok {
		out = append(out, c.fallback)
	}
	return out
}

// IsKnown сообщает, входит ли категория в перечисление классификатора
func (c *Classifier) IsKnown(cat Category) bool {
	if cat == c.fallback {
		return true
	}
	for _, rule := range c.rules {
		if rule.Category == cat {
			return true
		}
	}
	return false
}

// Keywords возвращает ключевые слова категории во всех ее правилах
func (c *Classifier) Keywords(cat Category) []string {
	var out []string
	for _, rule := range c.rules {
		if rule.Category == cat {
			out = append(out, rule.Keywords...)
		}
	}
	return out
}

// Rules возвращает копию таблицы правил
func (c *Classifier) Rules() []KeywordRule {
	out := make([]KeywordRule, len(c.rules))
	for i, rule := range c.rules {
		out[i] = KeywordRule{Category: rule.Category, Keywords: append([]string(nil), rule.Keywords...)}
	}
	return out
}

func (c *Classifier) Fallback() Category {
	return c.fallback
}

// Color возвращает цвет категории для карты и графика
func (c *Classifier) Color(cat Category) Color {
	if color, ok := c.palette[cat]; ok {
		return color
	}
	return fallbackColor
}
