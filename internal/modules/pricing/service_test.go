package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fleetbook/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"single day", "2024-05-01", "2024-05-02", 1},
		{"week", "2024-05-01", "2024-05-08", 7},
		{"same day still bills one", "2024-05-01", "2024-05-01", 1},
		{"inverted range still bills", "2024-05-05", "2024-05-01", 4},
		{"ten days", "2024-05-01", "2024-05-11", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentalDays(date(tt.start), date(tt.end)))
		})
	}
}

func TestQuoteVehicle_SpecimenBooking(t *testing.T) {
	// 5000/day for 10 days with GPS and insurance, office pickup.
	v := domain.Vehicle{ID: "v1", PricePerDay: 5000}

	q := QuoteVehicle(v, date("2024-05-01"), date("2024-05-11"),
		domain.Extras{GPS: true, Insurance: true},
		domain.Pickup{Type: domain.PickupOffice},
	)

	assert.Equal(t, 10, q.Days)
	assert.Equal(t, int64(50000), q.Base)
	assert.Equal(t, int64(5000), q.Discount)
	assert.Equal(t, int64(30000), q.ExtrasTotal)
	assert.Equal(t, int64(0), q.DeliveryCost)
	assert.Equal(t, int64(75000), q.Total)
	assert.Equal(t, int64(11250), Deposit(q.Total))
	assert.Equal(t, int64(63750), PayAtCounter(q.Total))
}

func TestQuoteVehicle_DiscountThreshold(t *testing.T) {
	v := domain.Vehicle{PricePerDay: 5000}
	pickup := domain.Pickup{Type: domain.PickupOffice}

	sevenDays := QuoteVehicle(v, date("2024-05-01"), date("2024-05-08"), domain.Extras{}, pickup)
	assert.Equal(t, 7, sevenDays.Days)
	assert.Equal(t, int64(0), sevenDays.Discount)

	eightDays := QuoteVehicle(v, date("2024-05-01"), date("2024-05-09"), domain.Extras{}, pickup)
	assert.Equal(t, 8, eightDays.Days)
	assert.Equal(t, int64(4000), eightDays.Discount)
	assert.Equal(t, int64(36000), eightDays.Total)
}

func TestQuoteVehicle_ExtrasAndDelivery(t *testing.T) {
	v := domain.Vehicle{PricePerDay: 3000}

	q := QuoteVehicle(v, date("2024-06-01"), date("2024-06-03"),
		domain.Extras{GPS: true, ChildSeat: true, Insurance: true},
		domain.Pickup{Type: domain.PickupDelivery, Address: "Hotel Morabeza"},
	)

	assert.Equal(t, 2, q.Days)
	assert.Equal(t, int64(6000), q.Base)
	// (500 + 800 + 2500) per day for 2 days
	assert.Equal(t, int64(7600), q.ExtrasTotal)
	assert.Equal(t, DeliveryFlatFee, q.DeliveryCost)
	assert.Equal(t, int64(14600), q.Total)
}

func TestQuoteVehicle_CustomLocationChargesDelivery(t *testing.T) {
	v := domain.Vehicle{PricePerDay: 3000}

	q := QuoteVehicle(v, date("2024-06-01"), date("2024-06-02"),
		domain.Extras{}, domain.Pickup{Type: domain.PickupOffice, Location: "custom"})

	assert.Equal(t, DeliveryFlatFee, q.DeliveryCost)
}

func TestQuoteVehicle_TotalNeverNegative(t *testing.T) {
	q := QuoteVehicle(domain.Vehicle{PricePerDay: 0}, date("2024-06-01"), date("2024-06-20"),
		domain.Extras{}, domain.Pickup{Type: domain.PickupOffice})

	assert.GreaterOrEqual(t, q.Total, int64(0))
}

func TestQuoteTour(t *testing.T) {
	tour := domain.Tour{PricePerPerson: 6000, Capacity: 4}

	assert.Equal(t, int64(6000), QuoteTour(tour, 1))
	assert.Equal(t, int64(18000), QuoteTour(tour, 3))
	assert.Equal(t, int64(0), QuoteTour(tour, 0))
	assert.Equal(t, int64(0), QuoteTour(tour, -2))
}

func TestTransactionFee(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		method domain.PaymentMethod
		want   int64
	}{
		{"card fee on deposit", 11250, domain.MethodCard, 281},
		{"vinti4", 10000, domain.MethodVinti4, 150},
		{"stripe", 10000, domain.MethodStripe, 290},
		{"paypal", 10000, domain.MethodPaypal, 340},
		{"cash carries no fee", 10000, domain.MethodCash, 0},
		{"zero amount", 0, domain.MethodCard, 0},
		{"unknown method", 10000, domain.PaymentMethod("wire"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransactionFee(tt.amount, tt.method))
		})
	}
}

func TestDeposit_RoundsHalfUp(t *testing.T) {
	// 15% of 10 is 1.5 and rounds up.
	assert.Equal(t, int64(2), Deposit(10))
	assert.Equal(t, int64(11250), Deposit(75000))
	assert.Equal(t, int64(0), Deposit(0))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		startA, endA, startB, endB     string
		buffer                         int
		want                           bool
	}{
		{"disjoint beyond buffer", "2024-05-10", "2024-05-12", "2024-05-01", "2024-05-08", 1, false},
		{"touching through buffer", "2024-05-09", "2024-05-12", "2024-05-01", "2024-05-08", 1, true},
		{"plain overlap", "2024-05-05", "2024-05-10", "2024-05-01", "2024-05-08", 0, true},
		{"before existing", "2024-04-01", "2024-04-10", "2024-05-01", "2024-05-08", 1, false},
		{"contained", "2024-05-03", "2024-05-04", "2024-05-01", "2024-05-08", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(tt.startA), date(tt.endA), date(tt.startB), date(tt.endB), tt.buffer)
			assert.Equal(t, tt.want, got)
		})
	}
}
