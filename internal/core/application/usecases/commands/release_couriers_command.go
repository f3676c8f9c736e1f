package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrReleaseCouriersCommandIsNotConstructed = errors.New(
		"ReleaseCouriersCommand must be created via NewReleaseCouriersCommand constructor",
	)
)

// ReleaseCouriersCommand triggers a sweep that clears every expired courier
// reservation window. Availability reads self-heal expired windows one
// courier at a time; this batch operation tidies the rows nobody queries.
//
// Example:
//
//	cmd := NewReleaseCouriersCommand()
//	handler := NewReleaseCouriersCommandHandler(uowFactory)
//
//	// Run periodically from a scheduler
//	released, err := handler.Handle(ctx, cmd)
type ReleaseCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseCouriersCommand creates a command to release expired reservations.
// This is a parameterless command that processes all couriers.
func NewReleaseCouriersCommand() ReleaseCouriersCommand {
	command := ReleaseCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseCouriersCommandIsNotConstructed if validation fails.
func (c *ReleaseCouriersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseCouriersCommandIsNotConstructed)
}
