package handler

import "time"

type carRequest struct {
	Plate        string    `json:"plate"        validate:"required"`
	Manufacture  string    `json:"manufacture"  validate:"required"`
	Model        string    `json:"model"        validate:"required"`
	Image        string    `json:"image"`
	RentPerDay   int64     `json:"rent_per_day" validate:"required,gt=0"`
	Capacity     int       `json:"capacity"     validate:"required,gt=0"`
	Description  string    `json:"description"`
	AvailableAt  time.Time `json:"available_at"`
	Transmission string    `json:"transmission" validate:"required"`
	Available    bool      `json:"available"`
	Type         string    `json:"type"         validate:"required"`
	Year         string    `json:"year"         validate:"required"`
	Options      []string  `json:"options"`
	Specs        []string  `json:"specs"`
}

type listCarsQuery struct {
	Page   int    `query:"page"`
	Size   int    `query:"size"`
	Search string `query:"search"`
}
