package response

import (
	"time"

	"wirpackens-service/internal/module/pricing/models/entity"
)

type PriceCalculation struct {
	ID              int64     `json:"id"`
	ServiceType     string    `json:"serviceType"`
	RoomCount       int       `json:"roomCount"`
	SquareMeters    int       `json:"squareMeters"`
	FloorCount      int       `json:"floorCount"`
	ExpressService  bool      `json:"expressService"`
	WeekendService  bool      `json:"weekendService"`
	DisposalService bool      `json:"disposalService"`
	BasePrice       int64     `json:"basePrice"`
	AdditionalPrice int64     `json:"additionalPrice"`
	TotalPrice      int64     `json:"totalPrice"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewPriceCalculation(e entity.PriceCalculation) PriceCalculation {
	return PriceCalculation{
		ID:              e.ID,
		ServiceType:     e.ServiceType,
		RoomCount:       e.RoomCount,
		SquareMeters:    e.SquareMeters,
		FloorCount:      e.FloorCount,
		ExpressService:  e.ExpressService,
		WeekendService:  e.WeekendService,
		DisposalService: e.DisposalService,
		BasePrice:       e.BasePrice,
		AdditionalPrice: e.AdditionalPrice,
		TotalPrice:      e.TotalPrice,
		CreatedAt:       e.CreatedAt,
	}
}

type CreatedPriceCalculation struct {
	Calculation PriceCalculation
	EmailSent   bool
}

type Estimate struct {
	ServiceType     string   `json:"serviceType"`
	ServiceLabel    string   `json:"serviceLabel"`
	BasePrice       int64    `json:"basePrice"`
	AdditionalPrice int64    `json:"additionalPrice"`
	TotalPrice      int64    `json:"totalPrice"`
	Extras          []string `json:"extras"`
}
