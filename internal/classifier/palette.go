package classifier

// Color - цвета категории в интерфейсе
type Color struct {
	Background string `json:"background" yaml:"background"`
	Text       string `json:"text" yaml:"text"`
	Border     string `json:"border" yaml:"border"`
}

// Palette сопоставляет категории и цвета
type Palette map[Category]Color

var fallbackColor = Color{Background: "#E0E0E0", Text: "#000", Border: "#9E9E9E"}

// DefaultPalette возвращает встроенную палитру
func DefaultPalette() Palette {
	return Palette{
		Avalanche:        {Background: "#FAF9F6", Text: "#000", Border: "#476684"},
		Blizzard:         {Background: "#6EB0EF", Text: "#000", Border: "#87CEEB"},
		Drought:          {Background: "#AD9270", Text: "#000", Border: "#855C50"},
		Duststorm:        {Background: "#FDD674", Text: "#000", Border: "#C1972D"},
		Earthquake:       {Background: "#D6B5A6", Text: "#000", Border: "#AB846F"},
		VolcanicEruption: {Background: "#ED5555", Text: "#000", Border: "#FCB930"},
		Flood:            {Background: "#1BDDD6", Text: "#000", Border: "#000088"},
		Hailstorm:        {Background: "#D0D1E1", Text: "#000", Border: "#B4B3AE"},
		Hurricane:        {Background: "#A4948E", Text: "#000", Border: "#907C75"},
		Landslide:        {Background: "#A05C53", Text: "#000", Border: "#8B4513"},
		Tornado:          {Background: "#899A9F", Text: "#000", Border: "#7D7D7D"},
		Wildfire:         {Background: "#FA5D0A", Text: "#000", Border: "#FF4500"},
		Disaster:         fallbackColor,
	}
}

func (p Palette) clone() Palette {
	out := make(Palette, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
