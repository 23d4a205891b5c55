package entities

// Scope describes what is being estimated: rooms, square footage, quality
// tiers and optional services. It is the calculator's primary input and is
// snapshotted verbatim onto the estimate it produced.
//
// LayoutType and Comments are informational only; they never enter the
// arithmetic.
type Scope struct {
	ProjectType        string   `json:"project_type"`
	RoomCount          int      `json:"room_count"`
	Sqft               int      `json:"sqft"`
	LayoutType         string   `json:"layout_type,omitempty"`
	Rooms              []string `json:"rooms"`
	Furniture          Tier     `json:"furniture"`
	Appliances         Tier     `json:"appliances"`
	Lighting           Tier     `json:"lighting"`
	CustomMaterials    bool     `json:"custom_materials"`
	AdditionalServices []string `json:"additional_services,omitempty"`
	Comments           string   `json:"comments,omitempty"`
}

// Clone returns a deep copy so a template's scope can be reused without
// aliasing its slices.
func (s Scope) Clone() Scope {
	out := s
	if s.Rooms != nil {
		out.Rooms = append([]string(nil), s.Rooms...)
	}
	if s.AdditionalServices != nil {
		out.AdditionalServices = append([]string(nil), s.AdditionalServices...)
	}
	return out
}
