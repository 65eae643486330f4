package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"fleetbook/internal/database"
	"fleetbook/internal/domain"
	"fleetbook/internal/store"
)

// Seeds a sample snapshot: a small mixed fleet, two island tours, two
// taxi drivers and the default taxonomies. Overwrites whatever the
// snapshot database currently holds.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "fleetbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	persister, err := store.NewGormPersister(db)
	if err != nil {
		log.Fatal(err)
	}

	now := time.Now()

	taxiToyota := vehicle(now, "Toyota", "Corolla", 2021, domain.CategoryEconomy, "manual", 5, 4500, domain.UsageTaxi)
	st := store.State{
		Vehicles: []domain.Vehicle{
			vehicle(now, "Hyundai", "i10", 2022, domain.CategoryEconomy, "manual", 4, 3500, domain.UsageRental),
			vehicle(now, "Dacia", "Duster", 2023, domain.CategorySUV, "manual", 5, 6000, domain.UsageRental),
			vehicle(now, "Mercedes-Benz", "E-Class", 2022, domain.CategoryLuxury, "automatic", 5, 15000, domain.UsageRental),
			vehicle(now, "Toyota", "Hiace", 2020, domain.CategoryVan, "manual", 9, 9000, domain.UsageBoth),
			taxiToyota,
		},
		Tours: []domain.Tour{
			{
				ID:             uuid.NewString(),
				Title:          "Island Highlights",
				Description:    "Full-day loop with beach and mountain stops",
				PricePerPerson: 6000,
				Capacity:       8,
				DurationHours:  8,
				Features:       []string{"hotel pickup", "lunch", "guide"},
				CreatedAt:      now,
				UpdatedAt:      now,
			},
			{
				ID:             uuid.NewString(),
				Title:          "Sunset Coastal Drive",
				Description:    "Evening drive along the west coast",
				PricePerPerson: 3500,
				Capacity:       4,
				DurationHours:  3,
				Features:       []string{"hotel pickup", "photo stops"},
				CreatedAt:      now,
				UpdatedAt:      now,
			},
		},
		Drivers: []domain.Driver{
			{
				ID:               uuid.NewString(),
				Name:             "Carlos Tavares",
				License:          "CV-2031",
				Phone:            "+238 991 2233",
				Status:           domain.DriverAvailable,
				CurrentVehicleID: taxiToyota.ID,
				CreatedAt:        now,
				UpdatedAt:        now,
			},
			{
				ID:        uuid.NewString(),
				Name:      "Maria Fortes",
				License:   "CV-1984",
				Phone:     "+238 982 4455",
				Status:    domain.DriverOffDuty,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		Categories: []domain.Category{
			{ID: uuid.NewString(), Name: "economy", Type: domain.CategoryVehicleTaxonomy},
			{ID: uuid.NewString(), Name: "suv", Type: domain.CategoryVehicleTaxonomy},
			{ID: uuid.NewString(), Name: "luxury", Type: domain.CategoryVehicleTaxonomy},
			{ID: uuid.NewString(), Name: "van", Type: domain.CategoryVehicleTaxonomy},
			{ID: uuid.NewString(), Name: "fuel", Type: domain.CategoryExpenseTaxonomy},
			{ID: uuid.NewString(), Name: "maintenance", Type: domain.CategoryExpenseTaxonomy},
			{ID: uuid.NewString(), Name: "salaries", Type: domain.CategoryExpenseTaxonomy},
			{ID: uuid.NewString(), Name: "other", Type: domain.CategoryExpenseTaxonomy},
		},
	}

	if err := persister.Persist(st); err != nil {
		log.Fatal("seed failed:", err)
	}

	log.Printf("Seeded %d vehicles, %d tours, %d drivers", len(st.Vehicles), len(st.Tours), len(st.Drivers))
}

func vehicle(now time.Time, mk, model string, year int, category domain.VehicleCategory, transmission string, seats int, pricePerDay int64, usage domain.UsageType) domain.Vehicle {
	return domain.Vehicle{
		ID:           uuid.NewString(),
		Make:         mk,
		Model:        model,
		Year:         year,
		Category:     category,
		Transmission: transmission,
		Seats:        seats,
		PricePerDay:  pricePerDay,
		Status:       domain.VehicleAvailable,
		Available:    true,
		Usage:        usage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
