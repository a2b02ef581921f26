package dto

type TableAvailabilityDTO struct {
	ID        uint            `json:"id"`
	Number    int             `json:"number"`
	Location  string          `json:"location"`
	Capacity  int             `json:"capacity"`
	Available map[string]bool `json:"available"`
}
