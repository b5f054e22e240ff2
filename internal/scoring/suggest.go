package scoring

import "strings"

// Suggestions derives quick tips from the raw product name. A matched
// catalogue entry's own suggestions take precedence over these in Evaluate.
func Suggestions(productName string) []string {
	suggestions := []string{}
	lower := strings.ToLower(productName)

	if (strings.Contains(lower, "melk") || strings.Contains(lower, "milk")) &&
		!strings.Contains(lower, "haver") && !strings.Contains(lower, "soja") {
		suggestions = append(suggestions, "🥬 Probeer havermelk of sojamelk - 75% minder CO2!")
	}

	if strings.Contains(lower, "vlees") || strings.Contains(lower, "beef") || strings.Contains(lower, "rund") {
		suggestions = append(suggestions, "🥬 Probeer tofu of tempeh - 90% minder CO2!")
	}

	if strings.Contains(lower, "kip") || strings.Contains(lower, "chicken") {
		suggestions = append(suggestions, "🥬 Probeer plantaardige kip alternatieven")
	}

	if !strings.Contains(lower, "bio") && !strings.Contains(lower, "organic") && !strings.Contains(lower, "fair") {
		suggestions = append(suggestions, "🌱 Zoek naar biologische of Fair Trade varianten")
	}

	if strings.Contains(lower, "plastic") || strings.Contains(lower, "verpakt") {
		suggestions = append(suggestions, "♻️ Kies voor producten met minder verpakking")
	}

	if len(suggestions) == 0 {
		return []string{"Geweldig! Je maakt al een goede keuze! ✨"}
	}
	return suggestions
}
