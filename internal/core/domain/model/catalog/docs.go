// Package catalog provides the product domain model for the pizzeria:
// pizzas composed of ingredients, and fixed-price drinks and desserts.
//
// The package includes:
//   - Ingredient: A priced component of a pizza with dietary flags
//   - Pizza: A product whose sale price is derived from its ingredient costs
//   - Drink, Dessert: Products with a stored fixed price
//   - Product: The capability shared by everything that can be ordered
//
// Key business rules:
//   - A pizza's price is ingredient cost plus a 40% margin plus 9% tax,
//     with each intermediate value rounded half-up to cents before the
//     next multiplication
//   - A pizza is vegan/vegetarian iff all of its ingredients are; a pizza
//     with no ingredients is vacuously both
//   - Prices are computed at order time, never cached
package catalog
