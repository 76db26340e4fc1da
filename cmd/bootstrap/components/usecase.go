package components

import (
	"lendit/internal/domain/booking"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/config"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewWorkedStatuses,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingProjections,
		queries.NewBookingQueries,
		queries.NewItemQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewItemCommands,
		commands.NewUserCommands,
		commands.NewCommentCommands,
	),
)

// NewWorkedStatuses validates the configured status set once at
// startup; a typo in the environment fails the boot instead of
// silently skewing projections.
func NewWorkedStatuses(cfg config.Config) ([]booking.Status, error) {
	statuses := make([]booking.Status, 0, len(cfg.Booking.WorkedStatuses))
	for _, raw := range cfg.Booking.WorkedStatuses {
		s := booking.Status(raw)
		if !s.IsValid() {
			return nil, errs.Newf("invalid worked status: %s", raw)
		}
		statuses = append(statuses, s)
	}
	if len(statuses) == 0 {
		return nil, errs.New("worked statuses must not be empty")
	}
	return statuses, nil
}
