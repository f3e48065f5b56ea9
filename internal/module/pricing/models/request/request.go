package request

import "wirpackens-service/internal/module/pricing/calculator"

type PriceCalculation struct {
	ServiceType     string `json:"serviceType" validate:"required,oneof=household office moving messie"`
	SquareMeters    int    `json:"squareMeters" validate:"required,min=1,max=100000"`
	RoomCount       int    `json:"roomCount" validate:"min=0"`
	FloorCount      int    `json:"floorCount" validate:"min=0,max=99"`
	ExpressService  bool   `json:"expressService"`
	WeekendService  bool   `json:"weekendService"`
	DisposalService bool   `json:"disposalService"`
}

func (p PriceCalculation) Input() calculator.Input {
	return calculator.Input{
		ServiceType:     p.ServiceType,
		SquareMeters:    float64(p.SquareMeters),
		FloorCount:      p.FloorCount,
		ExpressService:  p.ExpressService,
		WeekendService:  p.WeekendService,
		DisposalService: p.DisposalService,
	}
}

// Estimate is the live-calculator query. It is not validated: incomplete or
// out-of-range input simply yields a zero estimate.
type Estimate struct {
	ServiceType     string  `json:"serviceType"`
	SquareMeters    float64 `json:"squareMeters"`
	FloorCount      int     `json:"floorCount"`
	ExpressService  bool    `json:"expressService"`
	WeekendService  bool    `json:"weekendService"`
	DisposalService bool    `json:"disposalService"`
}

func (e Estimate) Input() calculator.Input {
	return calculator.Input{
		ServiceType:     e.ServiceType,
		SquareMeters:    e.SquareMeters,
		FloorCount:      e.FloorCount,
		ExpressService:  e.ExpressService,
		WeekendService:  e.WeekendService,
		DisposalService: e.DisposalService,
	}
}
