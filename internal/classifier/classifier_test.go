package classifier

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_DefaultRules(t *testing.T) {
	cl := Default()

	tests := []struct {
		name string
		text string
		want Category
	}{
		{"empty text", "", Disaster},
		{"no match", "random chatter about lunch", Disaster},
		{"several keywords of one category", "Massive flood and flooding reported", Flood},
		{"upper case", "WILDFIRE raging near town", Wildfire},
		{"second keyword of category", "Volcano alert on the island", VolcanicEruption},
		{"eruption", "eruption warning", VolcanicEruption},
		{"substring inside word", "the firefighter went home", Wildfire},
		{"earlier rule wins", "tornado and earthquake at once", Earthquake},
		{"avalanche before wildfire", "avalanche after the fire", Avalanche},
		{"hailstorm", "Hailstorm damaged cars", Hailstorm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cl.Classify(tt.text))
		})
	}
}

func TestClassify_FirstDeclaredRuleWins(t *testing.T) {
	// обе категории содержат "storm"
	rules := []KeywordRule{
		{Category: Blizzard, Keywords: []string{"snow storm"}},
		{Category: Hailstorm, Keywords: []string{"storm"}},
	}
	cl, err := New(rules)
	require.NoError(t, err)
	assert.Equal(t, Blizzard, cl.Classify("heavy snow storm tonight"))
	assert.Equal(t, Hailstorm, cl.Classify("storm incoming"))

	reversed, err := New([]KeywordRule{rules[1], rules[0]})
	require.NoError(t, err)
	assert.Equal(t, Hailstorm, reversed.Classify("heavy snow storm tonight"))
}

func TestClassify_SingleKeywordMatchesItsCategory(t *testing.T) {
	cl := Default()
	rules := cl.Rules()
	for i, rule := range rules {
		for _, kw := range rule.Keywords {
			// проверяем только тексты, где не срабатывает более раннее правило
			shadowed := false
			for _, earlier := range rules[:i] {
				for _, ekw := range earlier.Keywords {
					if containsFold(kw, ekw) {
						shadowed = true
					}
				}
			}
			if shadowed {
				continue
			}
			assert.Equal(t, rule.Category, cl.Classify("reports of "+kw+" nearby"), "keyword %q", kw)
		}
	}
}

func TestClassify_ResultIsAlwaysKnownCategory(t *testing.T) {
	cl := Default()
	alphabet := []rune("abcdefghijklmnopqrstuvwxyz FLOODfire🔥")
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		n := rng.Intn(40)
		runes := make([]rune, n)
		for j := range runes {
			runes[j] = alphabet[rng.Intn(len(alphabet))]
		}
		got := cl.Classify(string(runes))
		assert.True(t, cl.IsKnown(got), "unexpected category %q", got)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New([]KeywordRule{{Category: "", Keywords: []string{"x"}}})
	assert.ErrorContains(t, err, "category must not be empty")

	_, err = New([]KeywordRule{{Category: Flood}})
	assert.ErrorContains(t, err, "no keywords")

	_, err = New([]KeywordRule{{Category: Flood, Keywords: []string{"flood", "  "}}})
	assert.ErrorContains(t, err, "empty keyword")

	_, err = New(DefaultRules(), WithFallback(""))
	assert.ErrorContains(t, err, "fallback")
}

func TestNew_NormalizesAndCopiesRules(t *testing.T) {
	rules := []KeywordRule{{Category: Flood, Keywords: []string{" FLOOD "}}}
	cl, err := New(rules, WithFallback("Unclassified"))
	require.NoError(t, err)

	rules[0].Keywords[0] = "changed"
	assert.Equal(t, Flood, cl.Classify("Flood warning"))
	assert.Equal(t, Category("Unclassified"), cl.Classify("sunny"))
	assert.Equal(t, []string{"flood"}, cl.Keywords(Flood))

	got := cl.Rules()
	got[0].Keywords[0] = "mutated"
	assert.Equal(t, []string{"flood"}, cl.Keywords(Flood))
}

func TestCategories_Order(t *testing.T) {
	cl := Default()
	cats := cl.Categories()
	require.Len(t, cats, 13)
	assert.Equal(t, Avalanche, cats[0])
	assert.Equal(t, Wildfire, cats[11])
	assert.Equal(t, Disaster, cats[12])
}

func TestColor(t *testing.T) {
	cl := Default()
	assert.Equal(t, "#FF4500", cl.Color(Wildfire).Border)
	assert.Equal(t, fallbackColor, cl.Color("Tsunami"))
}

func TestParse(t *testing.T) {
	data := []byte(`
fallback: Unclassified
rules:
  - category: Tsunami
    keywords: [tsunami, tidal wave]
    color:
      background: "#0000FF"
      text: "#FFF"
      border: "#000080"
  - category: Flood
    keywords: [flood]
`)
	cl, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, Category("Tsunami"), cl.Classify("Tidal wave hits the coast"))
	assert.Equal(t, Flood, cl.Classify("flood"))
	assert.Equal(t, Category("Unclassified"), cl.Classify("nothing"))
	assert.Equal(t, "#0000FF", cl.Color("Tsunami").Background)
	assert.Equal(t, "#000088", cl.Color(Flood).Border)
	assert.Equal(t, []Category{"Tsunami", Flood, "Unclassified"}, cl.Categories())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("rules: ["))
	assert.Error(t, err)

	_, err = Parse([]byte("fallback: Disaster\n"))
	assert.ErrorContains(t, err, "no rules")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - category: Drought\n    keywords: [dry spell]\n"), 0o600))

	cl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Drought, cl.Classify("Long dry spell"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read rules file")
}

func containsFold(s, sub string) bool {
	cl, _ := New([]KeywordRule{{Category: "x", Keywords: []string{sub}}})
	return cl.Classify(s) == "x"
}
