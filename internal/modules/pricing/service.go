package pricing

import (
	"math"
	"time"

	"fleetbook/internal/domain"
)

// Rates in whole CVE. Extras are billed per rental day, the delivery fee
// is flat per reservation.
const (
	GPSRatePerDay       int64 = 500
	ChildSeatRatePerDay int64 = 800
	InsuranceRatePerDay int64 = 2500
	DeliveryFlatFee     int64 = 1000

	// Rentals longer than a week earn a 10% discount on the base price.
	LongRentalThresholdDays = 7

	longRentalDiscountBps int64 = 1000
	depositBps            int64 = 1500
)

// Gateway fee rates in basis points of the amount paid.
var feeBps = map[domain.PaymentMethod]int64{
	domain.MethodVinti4: 150,
	domain.MethodCard:   250,
	domain.MethodStripe: 290,
	domain.MethodPaypal: 340,
	domain.MethodCash:   0,
}

// Quote is the price breakdown for a vehicle rental.
type Quote struct {
	Days         int   `json:"days"`
	Base         int64 `json:"base"`
	Discount     int64 `json:"discount"`
	ExtrasTotal  int64 `json:"extras_total"`
	DeliveryCost int64 `json:"delivery_cost"`
	Total        int64 `json:"total"`
}

// RentalDays converts a date range to billable days: the calendar-day
// difference rounded up, never less than one. Same-day and inverted
// ranges still bill a single day; rejecting inverted ranges is the
// reservation service's job, not the calculator's.
func RentalDays(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	days := int(math.Ceil(math.Abs(hours) / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// QuoteVehicle prices a rental. All sums are exact integer arithmetic;
// only the discount is rounded (half up).
func QuoteVehicle(v domain.Vehicle, start, end time.Time, extras domain.Extras, pickup domain.Pickup) Quote {
	days := RentalDays(start, end)

	base := v.PricePerDay * int64(days)

	var discount int64
	if days > LongRentalThresholdDays {
		discount = roundBps(base, longRentalDiscountBps)
	}

	var extrasTotal int64
	if extras.GPS {
		extrasTotal += GPSRatePerDay * int64(days)
	}
	if extras.ChildSeat {
		extrasTotal += ChildSeatRatePerDay * int64(days)
	}
	if extras.Insurance {
		extrasTotal += InsuranceRatePerDay * int64(days)
	}

	var deliveryCost int64
	if pickup.Type == domain.PickupDelivery || pickup.Location == "custom" {
		deliveryCost = DeliveryFlatFee
	}

	total := base - discount + extrasTotal + deliveryCost
	if total < 0 {
		total = 0
	}

	return Quote{
		Days:         days,
		Base:         base,
		Discount:     discount,
		ExtrasTotal:  extrasTotal,
		DeliveryCost: deliveryCost,
		Total:        total,
	}
}

// QuoteTour prices a tour booking.
func QuoteTour(t domain.Tour, passengers int) int64 {
	if passengers < 0 {
		return 0
	}
	return t.PricePerPerson * int64(passengers)
}

// Deposit is the 15% share of the total due at booking time, rounded
// half up.
func Deposit(total int64) int64 {
	return roundBps(total, depositBps)
}

// PayAtCounter is the remainder collected at pickup.
func PayAtCounter(total int64) int64 {
	return total - Deposit(total)
}

// TransactionFee is the gateway fee the company absorbs on an amount paid
// with the given method, rounded half up. Cash and unknown methods carry
// no fee; callers skip recording a ledger row when the fee is zero.
func TransactionFee(amountPaid int64, method domain.PaymentMethod) int64 {
	if amountPaid <= 0 {
		return 0
	}
	return roundBps(amountPaid, feeBps[method])
}

// Overlaps reports whether range A collides with range B once bufferDays
// of turnaround time are appended after B's end date. Bounds compare as
// calendar dates, both ends inclusive.
func Overlaps(startA, endA, startB, endB time.Time, bufferDays int) bool {
	return !startA.After(endB.AddDate(0, 0, bufferDays)) && !endA.Before(startB)
}

// roundBps applies a basis-point rate with round-half-up semantics.
func roundBps(amount, bps int64) int64 {
	if amount <= 0 || bps <= 0 {
		return 0
	}
	return (amount*bps + 5000) / 10000
}
