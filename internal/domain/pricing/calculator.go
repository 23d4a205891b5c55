// Package pricing implements the estimate calculator: a pure,
// configuration-driven function from a project scope and a snapshot of active
// rate configs to a line-itemized cost breakdown with a milestone payment
// schedule.
//
// The engine performs no I/O, keeps no state between calls and is safe to
// invoke concurrently; fetching configs (the only step that may block) is the
// caller's job.
package pricing

import (
	"fmt"
	"math"

	"studio_interiors/internal/domain/entities"
)

// Breakdown is the calculator's output: ordered line items, roll-up totals
// and the milestone payment schedule.
type Breakdown struct {
	LineItems      []entities.LineItem
	CategoryTotals map[entities.LineItemCategory]float64
	Subtotal       float64
	GSTAmount      float64
	Total          float64
	Milestones     []entities.Milestone
}

// Compute prices a scope against a config snapshot.
//
// The algorithm, each step emitting labeled line items:
//  1. base rate x sqft
//  2. per-room fee x room count
//  3. per room: room-type base rate + per-sqft rate x allocated sqft, where
//     the total sqft is split evenly across the room list
//  4. furniture/appliances/lighting tier rate x sqft
//  5. flat custom-materials fee when requested
//  6. per additional service: base rate (+ per-sqft component when configured)
//
// Subtotal is the sum of all line items; GST and total are rounded half-up to
// cents; the total is split across milestonePercentages (40/40/20 when nil)
// with the rounding remainder assigned to the last milestone.
//
// Any room type, tier or service that does not resolve to an active config
// fails the whole calculation; no partial breakdown is ever returned.
func Compute(scope entities.Scope, snapshot Snapshot, milestonePercentages []float64) (Breakdown, error) {
	if err := ValidateScope(scope); err != nil {
		return Breakdown{}, err
	}
	if milestonePercentages == nil {
		milestonePercentages = DefaultMilestonePercentages
	}
	if err := ValidateMilestones(milestonePercentages); err != nil {
		return Breakdown{}, err
	}

	base, err := snapshot.BaseRates()
	if err != nil {
		return Breakdown{}, err
	}

	sqft := float64(scope.Sqft)
	var items []entities.LineItem
	add := func(label string, category entities.LineItemCategory, amount float64) {
		items = append(items, entities.LineItem{Label: label, Category: category, Amount: amount})
	}

	add("Base rate", entities.CategoryBase, base.BaseRate*sqft)
	add("Room fee", entities.CategoryBase, base.PerRoomRate*float64(scope.RoomCount))

	if len(scope.Rooms) > 0 {
		allocated := sqft / float64(len(scope.Rooms))
		for _, room := range scope.Rooms {
			rt, err := snapshot.RoomType(room)
			if err != nil {
				return Breakdown{}, err
			}
			add(room, entities.CategoryRooms, rt.BaseRate+rt.PerSqftRate*allocated)
		}
	}

	tiered := []struct {
		configName string
		category   entities.LineItemCategory
		tier       entities.Tier
	}{
		{entities.FurnitureConfigName, entities.CategoryFurniture, scope.Furniture},
		{entities.AppliancesConfigName, entities.CategoryAppliances, scope.Appliances},
		{entities.LightingConfigName, entities.CategoryLighting, scope.Lighting},
	}
	for _, tc := range tiered {
		rates, err := snapshot.TierRates(tc.configName)
		if err != nil {
			return Breakdown{}, err
		}
		rate, ok := rates.ByTier(tc.tier)
		if !ok {
			return Breakdown{}, &InvalidScopeError{Field: tc.configName, Reason: fmt.Sprintf("unknown tier %q", tc.tier)}
		}
		add(fmt.Sprintf("%s (%s)", labelForCategory(tc.category), tc.tier), tc.category, rate.Rate*sqft)
	}

	if scope.CustomMaterials {
		add("Custom materials", entities.CategoryCustomMaterials, base.CustomMaterialsFee)
	}

	for _, svc := range scope.AdditionalServices {
		sr, err := snapshot.Service(svc)
		if err != nil {
			return Breakdown{}, err
		}
		cost := sr.BaseRate
		if sr.HasSqftComponent {
			cost += sr.PerSqftRate * sqft
		}
		add(svc, entities.CategoryServices, cost)
	}

	subtotal := 0.0
	categoryTotals := make(map[entities.LineItemCategory]float64)
	for _, it := range items {
		subtotal += it.Amount
		categoryTotals[it.Category] += it.Amount
	}

	gst := roundToCents(subtotal * base.GSTRate)
	total := roundToCents(subtotal + gst)

	return Breakdown{
		LineItems:      items,
		CategoryTotals: categoryTotals,
		Subtotal:       subtotal,
		GSTAmount:      gst,
		Total:          total,
		Milestones:     splitTotal(total, milestonePercentages),
	}, nil
}

// ValidateScope enforces the structural rules a scope must satisfy before it
// can be priced. Callers at the API boundary run the same check so malformed
// input never reaches the calculator.
func ValidateScope(scope entities.Scope) error {
	if scope.Sqft < 0 {
		return &InvalidScopeError{Field: "sqft", Reason: "must not be negative"}
	}
	if scope.RoomCount < 0 {
		return &InvalidScopeError{Field: "room_count", Reason: "must not be negative"}
	}
	for i, room := range scope.Rooms {
		if room == "" {
			return &InvalidScopeError{Field: "rooms", Reason: fmt.Sprintf("entry %d is empty", i)}
		}
	}
	// Services form a set; a repeated name would be billed twice. Rooms stay a
	// list on purpose, two Bedrooms is a legitimate scope.
	seenServices := make(map[string]struct{}, len(scope.AdditionalServices))
	for i, svc := range scope.AdditionalServices {
		if svc == "" {
			return &InvalidScopeError{Field: "additional_services", Reason: fmt.Sprintf("entry %d is empty", i)}
		}
		if _, ok := seenServices[svc]; ok {
			return &InvalidScopeError{Field: "additional_services", Reason: fmt.Sprintf("duplicate service %q", svc)}
		}
		seenServices[svc] = struct{}{}
	}
	for _, t := range []struct {
		field string
		tier  entities.Tier
	}{
		{"furniture", scope.Furniture},
		{"appliances", scope.Appliances},
		{"lighting", scope.Lighting},
	} {
		switch t.tier {
		case entities.TierBasic, entities.TierMid, entities.TierPremium:
		default:
			return &InvalidScopeError{Field: t.field, Reason: fmt.Sprintf("unknown tier %q", t.tier)}
		}
	}
	return nil
}

// InstantiateFromTemplate copies a template's scope for reuse as a new
// estimate's starting input. Prices are never carried over; a template's
// cached total is stale by definition and must be recomputed against live
// configs.
func InstantiateFromTemplate(template entities.Estimate) (entities.Scope, error) {
	if !template.IsTemplate {
		return entities.Scope{}, ErrNotTemplate
	}
	return template.Scope.Clone(), nil
}

// roundToCents rounds half-up to two decimal places.
func roundToCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func labelForCategory(c entities.LineItemCategory) string {
	switch c {
	case entities.CategoryFurniture:
		return "Furniture"
	case entities.CategoryAppliances:
		return "Appliances"
	case entities.CategoryLighting:
		return "Lighting"
	}
	return string(c)
}
