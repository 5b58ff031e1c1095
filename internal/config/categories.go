package config

// Command categories, in the order help lists them.
const (
	CategoryInformation = "🕯️ Information"
	CategoryUtilities   = "📢 Utilities"
	CategoryVoice       = "🎧 Voice"
	CategoryMaintenance = "🛠️ Maintenance"
)

var CategoryWeights = map[string]int{
	CategoryInformation: 0,
	CategoryUtilities:   10,
	CategoryVoice:       20,
	CategoryMaintenance: 60,
}
