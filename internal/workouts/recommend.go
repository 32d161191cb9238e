package workouts

import "github.com/shopspring/decimal"

// weightStep is the increment/decrement applied to the next-weight
// recommendation. Decimal arithmetic keeps values like 82.5 exact.
var weightStep = decimal.RequireFromString("2.5")

// RecommendNextWeight suggests the next weight for an exercise based on the
// most recent record of it:
//   - no prior record, or no weight logged: start at 0
//   - difficulty 1-5 (felt easy): go up by 2.5
//   - difficulty 6-7 (challenging): stay
//   - difficulty 8-10 (too hard): go down by 2.5, never below 0
func RecommendNextWeight(prior *Record) decimal.Decimal {
	if prior == nil || !prior.WeightKg.Valid {
		return decimal.Zero
	}

	weight := prior.WeightKg.Decimal
	switch {
	case prior.DifficultyRating <= 5:
		return weight.Add(weightStep)
	case prior.DifficultyRating <= 7:
		return weight
	default:
		next := weight.Sub(weightStep)
		if next.IsNegative() {
			return decimal.Zero
		}
		return next
	}
}
