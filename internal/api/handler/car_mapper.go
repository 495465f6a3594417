package handler

import (
	"github.com/rental-cars/catalog-api/internal/api/respond"
	"github.com/rental-cars/catalog-api/internal/core/ports"
)

func toCarInput(req carRequest) ports.CarInput {
	return ports.CarInput{
		Plate:        req.Plate,
		Manufacture:  req.Manufacture,
		Model:        req.Model,
		Image:        req.Image,
		RentPerDay:   req.RentPerDay,
		Capacity:     req.Capacity,
		Description:  req.Description,
		AvailableAt:  req.AvailableAt,
		Transmission: req.Transmission,
		Available:    req.Available,
		Type:         req.Type,
		Year:         req.Year,
		Options:      req.Options,
		Specs:        req.Specs,
	}
}

func toListMeta(r *ports.ListCarsResult) respond.Meta {
	return respond.Meta{
		Page:       r.Page,
		Size:       r.Size,
		TotalData:  r.TotalData,
		TotalPages: r.TotalPages,
	}
}
