package entity

import "time"

type PriceCalculation struct {
	ID              int64     `db:"id"`
	ServiceType     string    `db:"service_type"`
	RoomCount       int       `db:"room_count"`
	SquareMeters    int       `db:"square_meters"`
	FloorCount      int       `db:"floor_count"`
	ExpressService  bool      `db:"express_service"`
	WeekendService  bool      `db:"weekend_service"`
	DisposalService bool      `db:"disposal_service"`
	BasePrice       int64     `db:"base_price"`
	AdditionalPrice int64     `db:"additional_price"`
	TotalPrice      int64     `db:"total_price"`
	CreatedAt       time.Time `db:"created_at"`
}

func (p PriceCalculation) RecordID() int64            { return p.ID }
func (p PriceCalculation) RecordCreatedAt() time.Time { return p.CreatedAt }
