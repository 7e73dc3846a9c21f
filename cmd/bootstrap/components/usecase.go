package components

import (
	"time"

	"github.com/manojshendge/gym-class-booking/internal/domain/booking"
	"github.com/manojshendge/gym-class-booking/internal/pkg/clock"
	"github.com/manojshendge/gym-class-booking/internal/pkg/config"
	"github.com/manojshendge/gym-class-booking/internal/usecase"
	"github.com/manojshendge/gym-class-booking/internal/usecase/commands"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBookingCommands,
		commands.NewIntakeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		usecase.NewAuthUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewBookingFactory interprets the gym's wall-clock schedule in the
// configured zone.
func NewBookingFactory(cfg config.Config, clk clock.Clock) (*booking.Factory, error) {
	loc, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		return nil, err
	}
	return booking.NewFactory(clk, loc), nil
}

func NewBookingCommands(
	cfg config.Config,
	bookingRepo commands.BookingRepository,
	catalogRepo commands.CatalogRepository,
	bookingQueries queries.BookingQueries,
	factory *booking.Factory,
	pool *pgxpool.Pool,
	clk clock.Clock,
) commands.BookingCommands {
	return commands.NewBookingCommands(
		bookingRepo,
		catalogRepo,
		bookingQueries,
		factory,
		pool,
		clk,
		cfg.Booking.CancelCutoff,
	)
}
