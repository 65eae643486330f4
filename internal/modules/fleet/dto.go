package fleet

type upsertVehicleRequest struct {
	ID           string  `json:"id"`
	Make         string  `json:"make" binding:"required"`
	Model        string  `json:"model" binding:"required"`
	Year         int     `json:"year"`
	Category     string  `json:"category"`
	Transmission string  `json:"transmission"`
	Seats        int     `json:"seats"`
	PricePerDay  int64   `json:"price_per_day"`
	Status       string  `json:"status"`
	Available    *bool   `json:"available"`
	Usage        string  `json:"usage"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"review_count"`
}

type maintenanceRequest struct {
	On *bool `json:"on" binding:"required"`
}
