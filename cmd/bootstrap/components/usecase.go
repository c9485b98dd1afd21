package components

import (
	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewBookingCommands,
		commands.NewItemCommands,
		commands.NewUserCommands,
		commands.NewRequestCommands,
		queries.NewBookingQueries,
		queries.NewItemQueries,
		queries.NewUserQueries,
		queries.NewRequestQueries,
	),
)
