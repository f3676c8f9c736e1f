// Package order provides domain entities and business logic for order
// management in the pizzeria system. It implements the Order aggregate root
// with lifecycle management, line items, and the cancellation window.
//
// The package includes:
//   - Order: The aggregate root that owns its line items and governs the
//     order lifecycle
//   - LineItem: A product reference with a quantity, priced at order time
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Order status follows a defined workflow:
//     Preparing -> InProcess -> OutForDelivery -> Delivered
//   - Cancelled is reachable from Preparing only, and only within five
//     minutes of creation; a cancel past the window is a silent no-op
//   - Delivered and Cancelled are terminal
//   - An order must contain at least one pizza line item to be placed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
