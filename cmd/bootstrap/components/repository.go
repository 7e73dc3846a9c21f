package components

import (
	"github.com/manojshendge/gym-class-booking/internal/infra/readstore"
	repo_impl "github.com/manojshendge/gym-class-booking/internal/infra/repository"
	"github.com/manojshendge/gym-class-booking/internal/usecase"
	"github.com/manojshendge/gym-class-booking/internal/usecase/commands"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write-side repositories
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			repo_impl.NewContactRepository,
			fx.As(new(commands.ContactRepository)),
		),
		fx.Annotate(
			repo_impl.NewNewsletterRepository,
			fx.As(new(commands.NewsletterRepository)),
		),
		// Read stores
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.BookingCounter)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
