package pricing

import (
	"errors"
	"testing"
)

func TestValidateMilestones(t *testing.T) {
	cases := []struct {
		name        string
		percentages []float64
		wantErr     bool
	}{
		{name: "standard 40/40/20", percentages: []float64{40, 40, 20}},
		{name: "two way 50/50", percentages: []float64{50, 50}},
		{name: "fractional thirds", percentages: []float64{33.33, 33.33, 33.34}},
		{name: "zero entry allowed", percentages: []float64{100, 0}},
		{name: "single entry", percentages: []float64{100}, wantErr: true},
		{name: "four entries", percentages: []float64{25, 25, 25, 25}, wantErr: true},
		{name: "empty", percentages: nil, wantErr: true},
		{name: "negative entry", percentages: []float64{120, -20}, wantErr: true},
		{name: "sum below 100", percentages: []float64{40, 40}, wantErr: true},
		{name: "sum above 100", percentages: []float64{60, 60}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateMilestones(tc.percentages)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidMilestones) {
					t.Fatalf("expected ErrInvalidMilestones, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSplitTotal_RemainderOnLastMilestone(t *testing.T) {
	milestones := splitTotal(100.01, []float64{33.33, 33.33, 33.34})

	if got := milestones[0].Amount; got != 33.33 {
		t.Fatalf("first milestone = %v, want 33.33", got)
	}
	if got := milestones[1].Amount; got != 33.33 {
		t.Fatalf("second milestone = %v, want 33.33", got)
	}
	// 100.01 - 66.66: the last milestone absorbs the rounding remainder.
	if got := milestones[2].Amount; got != 33.35 {
		t.Fatalf("last milestone = %v, want 33.35", got)
	}
}
