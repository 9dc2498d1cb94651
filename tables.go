package main

// ──────────────────────────────────────────────
// Static reference tables
// ──────────────────────────────────────────────
//
// Read-only agronomic lookup data consulted by the synthesis engines.
// Every lookup has an explicit fallback so a crop or soil type we have
// never heard of degrades to a sensible default instead of failing.

// cropsBySoilClimate maps soil type → climate → suitable crops, best first.
var cropsBySoilClimate = map[string]map[string][]string{
	"clay": {
		"tropical":  {"rice", "sugarcane", "cotton"},
		"temperate": {"wheat", "barley", "oats"},
		"arid":      {"sorghum", "millet", "cotton"},
	},
	"sandy": {
		"tropical":  {"groundnut", "coconut", "cashew"},
		"temperate": {"potato", "carrot", "radish"},
		"arid":      {"pearl_millet", "sesame", "castor"},
	},
	"loamy": {
		"tropical":  {"maize", "tomato", "onion"},
		"temperate": {"wheat", "peas", "cabbage"},
		"arid":      {"jowar", "bajra", "gram"},
	},
}

var fallbackCrops = []string{"wheat", "rice", "maize"}

// cropBasePrices is the reference modal price per quintal in ₹.
var cropBasePrices = map[string]int{
	"rice":      2500,
	"wheat":     2200,
	"maize":     1800,
	"cotton":    5500,
	"sugarcane": 350,
	"onion":     1200,
	"potato":    800,
	"tomato":    1500,
}

const fallbackBasePrice = 2000

// NPK is a per-hectare macronutrient requirement in kg.
type NPK struct {
	N int
	P int
	K int
}

var cropNPK = map[string]NPK{
	"rice":   {N: 120, P: 60, K: 40},
	"wheat":  {N: 100, P: 50, K: 30},
	"maize":  {N: 150, P: 75, K: 50},
	"cotton": {N: 160, P: 80, K: 80},
}

var fallbackNPK = NPK{N: 100, P: 50, K: 40}

// cropBaseYields is the reference yield per hectare (quintals, except
// sugarcane which is quoted in tons).
var cropBaseYields = map[string]float64{
	"rice":      45,
	"wheat":     35,
	"maize":     55,
	"cotton":    25,
	"sugarcane": 800,
}

const fallbackBaseYield = 40

// cropDiseases lists the common diseases per crop.
var cropDiseases = map[string][]string{
	"rice":   {"blast", "brown_spot", "bacterial_blight"},
	"wheat":  {"rust", "powdery_mildew", "septoria"},
	"maize":  {"corn_borer", "leaf_blight", "smut"},
	"tomato": {"early_blight", "late_blight", "mosaic_virus"},
}

var fallbackDiseases = []string{"fungal_infection", "bacterial_spot", "viral_disease"}

// marketCrops and marketCities are the default query targets: the first
// five crops and first three cities when the caller does not narrow the
// query.
var marketCrops = []string{"rice", "wheat", "maize", "cotton", "sugarcane", "onion", "potato", "tomato"}

var marketCities = []string{"Delhi", "Mumbai", "Kolkata", "Chennai", "Bangalore", "Hyderabad", "Pune", "Ahmedabad"}

// ── Lookup helpers with fallbacks ──────────────

func suitableCrops(soilType, climate string) []string {
	if byClimate, ok := cropsBySoilClimate[soilType]; ok {
		if crops, ok := byClimate[climate]; ok {
			return crops
		}
	}
	return fallbackCrops
}

func basePriceFor(crop string) int {
	if p, ok := cropBasePrices[crop]; ok {
		return p
	}
	return fallbackBasePrice
}

func npkFor(crop string) NPK {
	if r, ok := cropNPK[crop]; ok {
		return r
	}
	return fallbackNPK
}

func baseYieldFor(crop string) float64 {
	if y, ok := cropBaseYields[crop]; ok {
		return y
	}
	return fallbackBaseYield
}

func diseasesFor(crop string) []string {
	if d, ok := cropDiseases[crop]; ok {
		return d
	}
	return fallbackDiseases
}
