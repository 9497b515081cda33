package macro

import (
	"math"
	"sort"

	"github.com/macromate/macromate-backend/domain"
	"github.com/macromate/macromate-backend/entities"
)

// Round1 rounds half away from zero to one decimal place. Stored macro
// values and all reported totals use this rounding.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AggregateDay sums the macro fields of all entries for a single day.
func AggregateDay(entries []*entities.MacroLog) domain.TotalMacros {
	var total domain.TotalMacros
	for _, entry := range entries {
		total.Protein += entry.ProteinG
		total.Carbs += entry.CarbsG
		total.Fats += entry.FatsG
		total.Calories += entry.Calories
	}
	total.Protein = Round1(total.Protein)
	total.Carbs = Round1(total.Carbs)
	total.Fats = Round1(total.Fats)
	total.Calories = Round1(total.Calories)
	return total
}

// AggregateRange groups entries by log date and sums each group. Dates
// with no entries are absent from the result; the result is ordered by
// date descending.
func AggregateRange(entries []*entities.MacroLog) []domain.DailySummary {
	byDate := make(map[string]*domain.DailySummary)
	for _, entry := range entries {
		summary, ok := byDate[entry.LogDate]
		if !ok {
			summary = &domain.DailySummary{Date: entry.LogDate}
			byDate[entry.LogDate] = summary
		}
		summary.TotalProtein += entry.ProteinG
		summary.TotalCarbs += entry.CarbsG
		summary.TotalFats += entry.FatsG
		summary.TotalCalories += entry.Calories
	}

	summaries := make([]domain.DailySummary, 0, len(byDate))
	for _, summary := range byDate {
		summary.TotalProtein = Round1(summary.TotalProtein)
		summary.TotalCarbs = Round1(summary.TotalCarbs)
		summary.TotalFats = Round1(summary.TotalFats)
		summary.TotalCalories = Round1(summary.TotalCalories)
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})
	return summaries
}
