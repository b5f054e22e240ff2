package scoring

import "strings"

// Category is a fixed sustainability tag. ReferenceScore is on the same 0-10
// scale as product scores; applying a category shifts the working score by
// referenceScore-5.
type Category struct {
	ReferenceScore int
	Icon           string
}

// Categories is the closed category vocabulary. Immutable at runtime;
// catalogue entries referencing anything outside it are ignored.
var Categories = map[string]Category{
	"organic":       {ReferenceScore: 10, Icon: "🌱"},
	"local":         {ReferenceScore: 8, Icon: "🏡"},
	"plant_based":   {ReferenceScore: 9, Icon: "🥬"},
	"fair_trade":    {ReferenceScore: 8, Icon: "🤝"},
	"plastic_free":  {ReferenceScore: 7, Icon: "♻️"},
	"meat":          {ReferenceScore: 2, Icon: "🥩"},
	"processed":     {ReferenceScore: 3, Icon: "📦"},
	"imported":      {ReferenceScore: 4, Icon: "✈️"},
	"fruit":         {ReferenceScore: 5, Icon: "🍎"},
	"vegetable":     {ReferenceScore: 5, Icon: "🥕"},
	"dairy":         {ReferenceScore: 5, Icon: "🥛"},
	"grain":         {ReferenceScore: 5, Icon: "🌾"},
	"legume":        {ReferenceScore: 5, Icon: "🫘"},
	"plant_protein": {ReferenceScore: 5, Icon: "🌿"},
	"snack":         {ReferenceScore: 5, Icon: "🍫"},
	"beverage":      {ReferenceScore: 5, Icon: "🥤"},
	"egg":           {ReferenceScore: 5, Icon: "🥚"},
	"seafood":       {ReferenceScore: 5, Icon: "🐟"},
}

// KeywordRule applies a delta when its predicate matches the lowercased raw
// product name. Rules are not mutually exclusive; every matching rule fires.
type KeywordRule struct {
	Code  string
	Delta float64
	Match func(name string) bool
}

var KeywordRules = []KeywordRule{
	{Code: "keyword_bio", Delta: 2, Match: func(name string) bool {
		return strings.Contains(name, "bio") || strings.Contains(name, "organic")
	}},
	{Code: "keyword_fair", Delta: 2, Match: func(name string) bool {
		return strings.Contains(name, "fair trade")
	}},
	{Code: "keyword_local", Delta: 1, Match: func(name string) bool {
		return strings.Contains(name, "lokaal") || strings.Contains(name, "local")
	}},
	{Code: "keyword_plant", Delta: 2, Match: func(name string) bool {
		return strings.Contains(name, "plant") || strings.Contains(name, "vega") ||
			strings.Contains(name, "soja") || strings.Contains(name, "tofu") ||
			strings.Contains(name, "havermelk")
	}},
	{Code: "keyword_meat", Delta: -3, Match: func(name string) bool {
		return strings.Contains(name, "vlees") || strings.Contains(name, "beef") ||
			strings.Contains(name, "rund") || strings.Contains(name, "kip") ||
			strings.Contains(name, "meat")
	}},
	{Code: "keyword_plastic", Delta: -1, Match: func(name string) bool {
		return strings.Contains(name, "plastic") || strings.Contains(name, "verpakt")
	}},
}

type legacyProduct struct {
	Categories []string
	CO2        float64
}

// legacyProducts is the small direct name table that predates the curated
// catalogue. It still contributes categories on exact normalized or
// lowercase name hits, and backs the search fallback.
var legacyProducts = map[string]legacyProduct{
	"bio melk":           {Categories: []string{"organic", "local"}, CO2: 1.2},
	"gewone melk":        {Categories: []string{"local"}, CO2: 1.5},
	"havermelk":          {Categories: []string{"plant_based"}, CO2: 0.3},
	"sojamelk":           {Categories: []string{"plant_based"}, CO2: 0.4},
	"amandelmelk":        {Categories: []string{"plant_based"}, CO2: 0.7},
	"rundvlees":          {Categories: []string{"meat"}, CO2: 27.0},
	"kip":                {Categories: []string{"meat"}, CO2: 6.9},
	"varkensvlees":       {Categories: []string{"meat"}, CO2: 12.1},
	"tofu":               {Categories: []string{"plant_based"}, CO2: 2.0},
	"tempeh":             {Categories: []string{"plant_based"}, CO2: 2.0},
	"bananen fair trade": {Categories: []string{"fair_trade"}, CO2: 0.7},
	"bananen":            {Categories: []string{"imported"}, CO2: 0.7},
	"appels":             {Categories: []string{"local"}, CO2: 0.3},
	"tomaten":            {Categories: []string{"local"}, CO2: 0.7},
	"brood":              {Categories: []string{"local"}, CO2: 0.6},
	"pasta":              {Categories: []string{"processed"}, CO2: 1.0},
	"rijst":              {Categories: []string{"imported"}, CO2: 2.7},
}
