package macro

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/macromate/macromate-backend/domain"
)

// Normalize turns a raw model reply into a MacroRecord. The reply may wrap
// the JSON object in markdown fences or prose, so the substring from the
// first '{' to the last '}' is taken as the candidate object. Any failure
// to locate, parse or type-check the object degrades to the zero record
// carrying fallbackLabel, never an error.
func Normalize(rawText, fallbackLabel string) domain.MacroRecord {
	fallback := domain.MacroRecord{ParsedFoodItem: fallbackLabel}

	start := strings.Index(rawText, "{")
	end := strings.LastIndex(rawText, "}")
	if start == -1 || end == -1 || end < start {
		return fallback
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(rawText[start:end+1]), &fields); err != nil {
		return fallback
	}

	protein, ok := numberField(fields, "protein_g")
	if !ok {
		return fallback
	}
	carbs, ok := numberField(fields, "carbs_g")
	if !ok {
		return fallback
	}
	fats, ok := numberField(fields, "fats_g")
	if !ok {
		return fallback
	}
	calories, ok := numberField(fields, "calories")
	if !ok {
		return fallback
	}
	label, ok := fields["parsed_food_item"].(string)
	if !ok {
		return fallback
	}

	// Gram fields are clamped to zero; calories passes through as parsed.
	return domain.MacroRecord{
		ProteinG:       math.Max(0, protein),
		CarbsG:         math.Max(0, carbs),
		FatsG:          math.Max(0, fats),
		Calories:       calories,
		ParsedFoodItem: label,
	}
}

func numberField(fields map[string]interface{}, key string) (float64, bool) {
	v, ok := fields[key].(float64)
	return v, ok
}
