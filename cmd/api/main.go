package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fleetbook/internal/config"
	"fleetbook/internal/database"
	"fleetbook/internal/middleware"
	"fleetbook/internal/modules/events"
	"fleetbook/internal/modules/expense"
	"fleetbook/internal/modules/fleet"
	"fleetbook/internal/modules/reservation"
	"fleetbook/internal/modules/session"
	"fleetbook/internal/modules/taxi"
	"fleetbook/internal/modules/tour"
	jwtsvc "fleetbook/internal/pkg/jwt"
	"fleetbook/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	persister, err := store.NewGormPersister(db)
	if err != nil {
		log.Fatal(err)
	}

	initial, err := persister.Load()
	if err != nil {
		log.Fatal(err)
	}

	st := store.New(initial, persister)

	hub := events.NewHub()
	st.Subscribe(hub.NotifyEntityChanged)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	reservationHandler := reservation.NewHandler(reservation.NewService(st))
	fleetHandler := fleet.NewHandler(fleet.NewService(st))
	tourHandler := tour.NewHandler(tour.NewService(st))
	taxiHandler := taxi.NewHandler(taxi.NewService(st))
	expenseHandler := expense.NewHandler(expense.NewService(st))
	sessionHandler := session.NewHandler(j)
	eventsHandler := events.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		sessionHandler.RegisterRoutes(v1)
		fleetHandler.RegisterPublicRoutes(v1)
		tourHandler.RegisterPublicRoutes(v1)
		eventsHandler.RegisterRoutes(v1)

		// any selected role
		authed := v1.Group("/")
		authed.Use(middleware.Auth(j))
		{
			reservationHandler.RegisterRoutes(authed)
		}

		// back office
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			fleetHandler.RegisterAdminRoutes(admin)
			tourHandler.RegisterAdminRoutes(admin)
			taxiHandler.RegisterRoutes(admin)
			expenseHandler.RegisterRoutes(admin)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
