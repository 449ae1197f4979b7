package nutrition

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nourix/protocol-coach/internal/domain"
)

// typicalPortions are default meal portions in grams, used when a food
// record has no usable serving size. Keys are matched as substrings of the
// food name, most specific entries first.
var typicalPortions = []struct {
	Keyword string
	Grams   float64
}{
	{"egg", 60},
	{"bread", 30},
	{"cheese", 30},
	{"butter", 10},
	{"oil", 14},
	{"nuts", 28},
	{"seeds", 28},
	{"milk", 240},
	{"yogurt", 200},
	{"rice", 180},
	{"pasta", 180},
	{"oat", 160},
	{"meat", 120},
	{"chicken", 120},
	{"fish", 120},
	{"salmon", 120},
	{"tuna", 100},
	{"bean", 130},
	{"lentil", 130},
	{"spinach", 85},
	{"broccoli", 85},
	{"apple", 182},
	{"banana", 118},
	{"orange", 130},
}

const defaultPortionGrams = 150.0

var (
	parenGramsPattern   = regexp.MustCompile(`(?i)\((\d+(?:\.\d+)?)\s*g`)
	leadingGramsPattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*g`)
	anyGramsPattern     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*g(?:rams?)?`)
)

// ParseServingGrams extracts the gram value from a serving size string like
// "1 cup (240 g)" or "100g". It falls back to typical portions by food
// name, then to the 150 g default.
func ParseServingGrams(serving, foodName string) float64 {
	if serving != "" {
		if m := parenGramsPattern.FindStringSubmatch(serving); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return v
			}
		}
		if m := leadingGramsPattern.FindStringSubmatch(serving); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return v
			}
		}
		if m := anyGramsPattern.FindStringSubmatch(serving); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= 5 && v <= 2000 {
				return v
			}
		}
	}

	fname := strings.ToLower(foodName)
	for _, tp := range typicalPortions {
		if strings.Contains(fname, tp.Keyword) {
			return tp.Grams
		}
	}
	return defaultPortionGrams
}

// ScaledFood is a food record scaled from per-100g values to an actual
// portion, with scaling metadata attached.
type ScaledFood struct {
	Name        string             `json:"name"`
	PortionG    float64            `json:"portion_g"`
	ScaleFactor float64            `json:"scale_factor"`
	Nutrients   map[string]float64 `json:"nutrients"`
	Tags        []string           `json:"tags"`
}

// ScaleToPortion converts a per-100g record to per-serving values. Pass a
// portion of 0 to derive the portion from the record's serving size.
func ScaleToPortion(f *domain.Food, portionG float64) ScaledFood {
	if portionG <= 0 {
		portionG = ParseServingGrams(f.ServingSize, f.Name)
	}
	factor := portionG / 100.0

	scaled := make(map[string]float64)
	for key, val := range f.Nutrients() {
		scaled[key] = math.Round(val*factor*100) / 100
	}
	return ScaledFood{
		Name:        f.Name,
		PortionG:    portionG,
		ScaleFactor: math.Round(factor*1000) / 1000,
		Nutrients:   scaled,
		Tags:        f.Tags,
	}
}
