// Package services contains domain services implementing business logic
// that spans multiple aggregates.
//
// Domain services coordinate operations between different domain models
// while keeping the business rules within the domain layer. They are
// stateless and operate on aggregates passed to them.
//
// Services:
//   - CourierDispatcher: selects and reserves an available courier
//     for an order's delivery area
//   - DiscountCalculator: stacks eligible discounts for an order and
//     mutates customer and discount-code state as a side effect
package services
