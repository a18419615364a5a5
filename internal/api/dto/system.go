package dto

type SystemResponse struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

type ListSystemsResponse struct {
	Systems []SystemResponse `json:"systems"`
}
