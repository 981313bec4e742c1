package transport

import (
	"math"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/transport"
)

// Estimation constants. Fuel cost assumes the standard per-liter price
// over the fleet-average fuel economy; the toll model is a flat entry fee
// plus a per-kilometer charge.
const (
	shortTripKm    = 30.0
	shortTripTotal = 4000

	fuelPricePerLiter = 1486.0
	kmPerLiter        = 13.3

	tollBaseFare  = 900.0
	tollPerKmFare = 44.3
)

// Estimate computes the reimbursement for a one-way commute. Trips of up
// to 30 km get the flat short-trip amount with no fuel/toll breakdown.
// Longer trips are costed as fuel plus (when the route is tolled) toll,
// with the total truncated to the nearest 10 won and never below the
// short-trip amount, so crossing the 30 km threshold cannot lower the
// reimbursement.
func Estimate(km float64, hasToll bool) transport.Estimate {
	if km <= shortTripKm {
		return transport.Estimate{Total: shortTripTotal, Fuel: 0, Toll: 0}
	}

	fuel := km * fuelPricePerLiter / kmPerLiter

	toll := 0.0
	if hasToll {
		toll = tollBaseFare + tollPerKmFare*km
	}

	total := math.Floor((fuel+toll)/10) * 10
	if total < shortTripTotal {
		total = shortTripTotal
	}

	return transport.Estimate{
		Total: int64(total),
		Fuel:  int64(math.Round(fuel)),
		Toll:  int64(math.Round(toll)),
	}
}
