package catalog

var DayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// AmenityIcons maps amenity names to icon identifiers used by clients.
var AmenityIcons = map[string]string{
	"Swimming Pool":             "waves",
	"Sauna":                     "thermometer",
	"Steam Room":                "cloud",
	"Parking":                   "car",
	"Wi-Fi":                     "wifi",
	"Locker Room":               "lock",
	"Showers":                   "shower-head",
	"Air Conditioning":          "air-vent",
	"Personal Trainer":          "user-check",
	"Group Classes":             "users",
	"Cardio Zone":               "heart-pulse",
	"Free Weights":              "dumbbell",
	"Functional Training":       "zap",
	"Smoothie Bar":              "cup-soda",
	"Towel Service":             "shirt",
	"Body Composition Analysis": "scan",
	"Physiotherapy":             "stethoscope",
	"Kids Play Area":            "baby",
}

var GymTypeLabels = map[string]string{
	"commercial": "Commercial Gym",
	"crossfit":   "CrossFit Box",
	"yoga":       "Yoga Studio",
	"women_only": "Women Only",
	"24x7":       "24/7 Access",
	"budget":     "Budget Friendly",
}

var PriceRangeLabels = map[string]string{
	"budget":  "Budget",
	"mid":     "Mid-Range",
	"premium": "Premium",
}

type Meta struct {
	DayNames         []string          `json:"dayNames"`
	AmenityIcons     map[string]string `json:"amenityIcons"`
	GymTypeLabels    map[string]string `json:"gymTypeLabels"`
	PriceRangeLabels map[string]string `json:"priceRangeLabels"`
}

func GetMeta() Meta {
	return Meta{
		DayNames:         DayNames,
		AmenityIcons:     AmenityIcons,
		GymTypeLabels:    GymTypeLabels,
		PriceRangeLabels: PriceRangeLabels,
	}
}
