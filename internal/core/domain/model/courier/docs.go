// Package courier provides domain entities and business logic for courier
// management in the pizzeria system. It implements the Courier aggregate root
// with area assignment and time-based availability.
//
// The package includes:
//   - Courier: The aggregate root that manages courier identity, delivery
//     area, and the reservation window
//
// Key business rules:
//   - Couriers must have a valid unique identifier, name, and delivery area
//   - A courier is available iff its unavailable-until timestamp is unset
//     or has passed; availability is derived, not stored
//   - Reading availability past the timestamp self-heals the stored field
//     back to unset; this is an observed side effect, not just a query filter
//   - Taking an order reserves the courier for a fixed 30 minute window
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
