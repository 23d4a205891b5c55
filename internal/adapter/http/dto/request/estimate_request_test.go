package request

import (
	"testing"

	"studio_interiors/internal/domain/entities"
)

func TestScopeRequest_ToScope(t *testing.T) {
	r := ScopeRequest{
		ProjectType:        " residential ",
		RoomCount:          2,
		Sqft:               1000,
		LayoutType:         " open ",
		Rooms:              []string{" Kitchen ", "Living Room"},
		Furniture:          "mid",
		Appliances:         "basic",
		Lighting:           "premium",
		CustomMaterials:    true,
		AdditionalServices: []string{" 3D Rendering "},
		Comments:           "keep the bar cart",
	}

	scope := r.ToScope()
	if scope.ProjectType != "residential" || scope.LayoutType != "open" {
		t.Fatalf("expected trimmed fields, got %+v", scope)
	}
	if len(scope.Rooms) != 2 || scope.Rooms[0] != "Kitchen" {
		t.Fatalf("expected trimmed rooms, got %v", scope.Rooms)
	}
	if len(scope.AdditionalServices) != 1 || scope.AdditionalServices[0] != "3D Rendering" {
		t.Fatalf("expected trimmed services, got %v", scope.AdditionalServices)
	}
	if scope.Furniture != entities.TierMid || scope.Appliances != entities.TierBasic || scope.Lighting != entities.TierPremium {
		t.Fatalf("unexpected tiers: %+v", scope)
	}
	if !scope.CustomMaterials || scope.Comments != "keep the bar cart" {
		t.Fatalf("unexpected passthrough fields: %+v", scope)
	}
}

func TestRateConfigRequest_ResolveName(t *testing.T) {
	r := RateConfigRequest{Name: "  base_rates  "}
	if got := r.ResolveName(); got != "base_rates" {
		t.Fatalf("expected base_rates, got %q", got)
	}

	r2 := RateConfigRequest{Name: "   "}
	if got := r2.ResolveName(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
