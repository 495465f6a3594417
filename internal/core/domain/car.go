package domain

import "time"

// Car is the catalog aggregate root.
type Car struct {
	ID           string    `json:"id"`
	Plate        string    `json:"plate"`
	Manufacture  string    `json:"manufacture"`
	Model        string    `json:"model"`
	Image        string    `json:"image,omitempty"`
	RentPerDay   int64     `json:"rent_per_day"`
	Capacity     int       `json:"capacity"`
	Description  string    `json:"description,omitempty"`
	AvailableAt  time.Time `json:"available_at"`
	Transmission string    `json:"transmission"`
	Available    bool      `json:"available"`
	Type         string    `json:"type"`
	Year         string    `json:"year"`
	Options      []string  `json:"options,omitempty"`
	Specs        []string  `json:"specs,omitempty"`
	// Audit trail: IDs of the principals that created / last updated the car.
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
