package dto

type PlanSystemRequest struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

type PlanRequest struct {
	JumpRange float64 `json:"jump_range"`
	Mode      string  `json:"mode"`
	// Optional inline catalogue; when empty the stored catalogue is used.
	Systems []PlanSystemRequest `json:"systems"`
}

type PlanLegResponse struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceLy float64 `json:"distance_ly"`
	Jumps      int     `json:"jumps"`
}

type PlanResponse struct {
	RouteID         int64             `json:"route_id,omitempty"`
	Mode            string            `json:"mode"`
	JumpRange       float64           `json:"jump_range"`
	Systems         []string          `json:"systems"`
	Legs            []PlanLegResponse `json:"legs"`
	TotalDistanceLy float64           `json:"total_distance_ly"`
	TotalJumps      int               `json:"total_jumps"`
	Feasible        bool              `json:"feasible"`
}
