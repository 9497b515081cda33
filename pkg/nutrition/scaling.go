package nutrition

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/macromate/macromate-backend/domain"
)

const DefaultWeightGrams = 100.0

var (
	barcodePattern = regexp.MustCompile(`^\d{6,14}$`)
	weightPattern  = regexp.MustCompile(`([0-9]*\.?[0-9]+)`)
)

// ValidateBarcode checks the digit-string shape before any external call.
func ValidateBarcode(barcode string) error {
	if !barcodePattern.MatchString(strings.TrimSpace(barcode)) {
		return domain.ErrInvalidBarcode
	}
	return nil
}

// ParseWeight extracts the first numeric token from a weight string,
// accepting comma as decimal separator. Unparsable or non-positive input
// falls back to the 100g default.
func ParseWeight(weight string) float64 {
	match := weightPattern.FindString(strings.ReplaceAll(weight, ",", "."))
	if match == "" {
		return DefaultWeightGrams
	}
	val, err := strconv.ParseFloat(match, 64)
	if err != nil || val <= 0 {
		return DefaultWeightGrams
	}
	return val
}

// ScaleToWeight scales the per-100g values linearly to the requested
// weight. Protein, carbs and fats round half away from zero to one
// decimal place, calories to a whole number. A record that is zero in
// all four fields signals insufficient nutrient data; a genuinely
// zero-calorie product is indistinguishable and also rejected, a known
// limitation.
func (p *Product) ScaleToWeight(weightGrams float64) (domain.MacroRecord, error) {
	scale := weightGrams / 100.0

	record := domain.MacroRecord{
		ProteinG:       math.Round(p.Protein100g*scale*10) / 10,
		CarbsG:         math.Round(p.Carbs100g*scale*10) / 10,
		FatsG:          math.Round(p.Fats100g*scale*10) / 10,
		Calories:       math.Round(p.Calories100g * scale),
		ParsedFoodItem: p.Name,
	}

	if record.ProteinG == 0 && record.CarbsG == 0 && record.FatsG == 0 && record.Calories == 0 {
		return domain.MacroRecord{}, domain.ErrInsufficientNutrient
	}
	return record, nil
}
