// Package calculator holds the price formula shared by the quote endpoints
// and the booking flow.
package calculator

import (
	"math"
	"strconv"
)

const (
	ServiceHousehold = "household"
	ServiceOffice    = "office"
	ServiceMoving    = "moving"
	ServiceMessie    = "messie"
)

// ServiceTypes lists the bookable services in display order.
var ServiceTypes = []string{ServiceHousehold, ServiceOffice, ServiceMoving, ServiceMessie}

// Rates in EUR per square meter.
var rates = map[string]float64{
	ServiceHousehold: 25,
	ServiceOffice:    30,
	ServiceMoving:    12,
	ServiceMessie:    35,
}

var labels = map[string]string{
	ServiceHousehold: "Haushaltsauflösung",
	ServiceOffice:    "Büroentrümpelung",
	ServiceMoving:    "Umzug",
	ServiceMessie:    "Messiewohnung",
	"cleaning":       "Besenrein",
	"other":          "Sonstiges",
}

// MaxSquareMeters is the largest area a quote is computed for.
const MaxSquareMeters = 100000

// maxEUR keeps cent amounts inside int64.
const maxEUR = math.MaxInt64 / 100

const (
	expressPercent   = 20
	weekendPercent   = 15
	floorStepPercent = 5
	floorCapPercent  = 50
	floorCap         = 10
	disposalPerSqm   = 10
)

type Input struct {
	ServiceType     string
	SquareMeters    float64
	FloorCount      int
	ExpressService  bool
	WeekendService  bool
	DisposalService bool
}

// Breakdown is in cents.
type Breakdown struct {
	BasePrice       int64 `json:"basePrice"`
	AdditionalPrice int64 `json:"additionalPrice"`
	TotalPrice      int64 `json:"totalPrice"`
}

// Rate returns the per-square-meter rate, 0 for unknown services.
func Rate(serviceType string) float64 {
	return rates[serviceType]
}

// Label is the German display name of a service key. Unknown keys are
// returned unchanged.
func Label(serviceType string) string {
	if l, ok := labels[serviceType]; ok {
		return l
	}
	return serviceType
}

// FloorSurchargePercent is 0 up to the first floor, 5% per additional floor
// and a flat 50% from the tenth floor on.
func FloorSurchargePercent(floorCount int) int {
	switch {
	case floorCount <= 1:
		return 0
	case floorCount >= floorCap:
		return floorCapPercent
	default:
		return (floorCount - 1) * floorStepPercent
	}
}

// Calculate never fails: an unknown service or an area outside
// (0, MaxSquareMeters] gives an all-zero breakdown.
func Calculate(in Input) Breakdown {
	rate := Rate(in.ServiceType)
	if rate == 0 || !(in.SquareMeters > 0) || in.SquareMeters > MaxSquareMeters {
		return Breakdown{}
	}

	base := rate * in.SquareMeters

	percent := FloorSurchargePercent(in.FloorCount)
	if in.ExpressService {
		percent += expressPercent
	}
	if in.WeekendService {
		percent += weekendPercent
	}
	additional := base * float64(percent) / 100
	if in.DisposalService {
		additional += disposalPerSqm * in.SquareMeters
	}

	return Breakdown{
		BasePrice:       toCents(base),
		AdditionalPrice: toCents(additional),
		TotalPrice:      toCents(base + additional),
	}
}

// Extras names the selected surcharges for quotes and emails.
func Extras(in Input) []string {
	var out []string
	if p := FloorSurchargePercent(in.FloorCount); p > 0 {
		out = append(out, "Etagenzuschlag (+"+strconv.Itoa(p)+"%)")
	}
	if in.ExpressService {
		out = append(out, "Express-Service (+20%)")
	}
	if in.WeekendService {
		out = append(out, "Wochenend-Service (+15%)")
	}
	if in.DisposalService {
		out = append(out, "Sondermüll-Entsorgung (+10€/m²)")
	}
	return out
}

func toCents(eur float64) int64 {
	if eur >= maxEUR {
		return math.MaxInt64
	}
	return int64(math.Round(eur * 100))
}
