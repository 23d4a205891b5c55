package pricing

import (
	"fmt"
	"math"

	"studio_interiors/internal/domain/entities"
)

// DefaultMilestonePercentages is the standard three-stage billing split used
// when the caller does not supply one.
var DefaultMilestonePercentages = []float64{40, 40, 20}

// milestoneSumEpsilon tolerates fractional percentages like 33.33/33.33/33.34.
const milestoneSumEpsilon = 1e-9

// ValidateMilestones checks a payment split: 2 or 3 entries, none negative,
// summing to exactly 100 (within epsilon).
func ValidateMilestones(percentages []float64) error {
	if len(percentages) < 2 || len(percentages) > 3 {
		return fmt.Errorf("%w: expected 2 or 3 entries, got %d", ErrInvalidMilestones, len(percentages))
	}
	sum := 0.0
	for i, p := range percentages {
		if p < 0 {
			return fmt.Errorf("%w: entry %d is negative", ErrInvalidMilestones, i)
		}
		sum += p
	}
	if math.Abs(sum-100) > milestoneSumEpsilon {
		return fmt.Errorf("%w: entries sum to %v, want 100", ErrInvalidMilestones, sum)
	}
	return nil
}

// splitTotal divides total across the given percentages so the per-milestone
// amounts reconcile exactly: every amount but the last is the rounded share,
// the last absorbs the rounding remainder.
func splitTotal(total float64, percentages []float64) []entities.Milestone {
	milestones := make([]entities.Milestone, len(percentages))
	paid := 0.0
	for i, p := range percentages {
		var amount float64
		if i == len(percentages)-1 {
			amount = roundToCents(total - paid)
		} else {
			amount = roundToCents(total * p / 100)
			paid += amount
		}
		milestones[i] = entities.Milestone{Percentage: p, Amount: amount}
	}
	return milestones
}
