package components

import (
	"github.com/manojshendge/gym-class-booking/internal/handler"
	"github.com/manojshendge/gym-class-booking/internal/handler/api"
	"github.com/manojshendge/gym-class-booking/internal/handler/middleware"
	"github.com/manojshendge/gym-class-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewIntakeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(NewRouter),
)

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	intakeHandler *api.IntakeHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	handler.NewRouter(engine, cfg, handler.Handlers{
		Auth:         authHandler,
		Catalog:      catalogHandler,
		Availability: availabilityHandler,
		Booking:      bookingHandler,
		Intake:       intakeHandler,
	}, authMiddleware)
}
