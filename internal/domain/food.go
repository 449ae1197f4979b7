package domain

import "strings"

// Food is a per-100g nutrient record from the nutrition database.
// Rows are loaded once at startup into the in-memory nutrition index and
// treated as read-only for the lifetime of the process.
type Food struct {
	// Key is the lowercase food name used for exact lookup.
	Key  string `gorm:"primaryKey;type:varchar(255)" json:"-"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	// Macros (per 100 g)
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
	FiberG   float64 `json:"fiber_g"`
	SugarG   float64 `json:"sugar_g"`

	// Micros (per 100 g)
	IronMg       float64 `json:"iron_mg"`
	MagnesiumMg  float64 `json:"magnesium_mg"`
	CalciumMg    float64 `json:"calcium_mg"`
	ZincMg       float64 `json:"zinc_mg"`
	PotassiumMg  float64 `json:"potassium_mg"`
	SodiumMg     float64 `json:"sodium_mg"`
	TryptophanMg float64 `json:"tryptophan_mg"`
	VitaminCMg   float64 `json:"vitamin_c_mg"`
	VitaminB6Mg  float64 `json:"vitamin_b6_mg"`
	VitaminB12Ug float64 `json:"vitamin_b12_ug"`
	VitaminDUg   float64 `json:"vitamin_d_ug"`
	CholineMg    float64 `json:"choline_mg"`

	ServingSize string   `gorm:"type:varchar(64)" json:"serving_size,omitempty"`
	Tags        []string `gorm:"serializer:json;type:jsonb" json:"tags"`
}

func (Food) TableName() string {
	return "foods"
}

// Nutrients returns the numeric nutrient fields keyed by their canonical
// snake_case names, as used by the threshold and similarity tables.
func (f *Food) Nutrients() map[string]float64 {
	return map[string]float64{
		"calories":       f.Calories,
		"protein_g":      f.ProteinG,
		"fat_g":          f.FatG,
		"carbs_g":        f.CarbsG,
		"fiber_g":        f.FiberG,
		"sugar_g":        f.SugarG,
		"iron_mg":        f.IronMg,
		"magnesium_mg":   f.MagnesiumMg,
		"calcium_mg":     f.CalciumMg,
		"zinc_mg":        f.ZincMg,
		"potassium_mg":   f.PotassiumMg,
		"sodium_mg":      f.SodiumMg,
		"tryptophan_mg":  f.TryptophanMg,
		"vitamin_c_mg":   f.VitaminCMg,
		"vitamin_b6_mg":  f.VitaminB6Mg,
		"vitamin_b12_ug": f.VitaminB12Ug,
		"vitamin_d_ug":   f.VitaminDUg,
		"choline_mg":     f.CholineMg,
	}
}

// SearchText is the lowercased name-plus-tags string the constraint graph
// matches forbidden keywords against.
func (f *Food) SearchText() string {
	return strings.ToLower(f.Name) + " " + strings.ToLower(strings.Join(f.Tags, " "))
}

// HasTag reports whether the food carries the given tag.
func (f *Food) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FoodFilter narrows a paginated food listing.
type FoodFilter struct {
	Query  string // substring match on name
	Tag    string // exact tag match
	Cursor string
	Limit  int
}

// SwapResult is a candidate substitute for a rejected food.
// Ephemeral: computed per substitution request, never persisted.
type SwapResult struct {
	Name            string  `json:"name"`
	Similarity      float64 `json:"similarity_score"`
	ProtocolOverlap float64 `json:"protocol_overlap"`
	FinalScore      float64 `json:"final_score"`
	Record          *Food   `json:"record"`
	Why             string  `json:"why"`
}
