// Package order provides the order aggregate and the in-memory structures that
// give access to orders during their lifecycle.
//
// The package includes:
//   - Order: The aggregate root holding customer details, line items, money totals,
//     delivery priority and lifecycle status
//   - LineItem: An immutable purchased item owned by its order
//   - Status and Priority: Validated enumerations with string forms
//   - Store: The single owner of every Order, keyed by ID
//   - AdmissionStack: LIFO pool of order ids awaiting confirmation
//   - DispatchQueue: Priority pool of order ids awaiting delivery
//   - HistoryIndex: AVL index over every order id ever created
//
// Key business rules:
//   - Order ids are sequential integers starting at 1000
//   - subtotal = Σ quantity × unitPrice over line items
//   - tax = round2((subtotal − discount + deliveryFee) × 8%)
//   - total = subtotal − discount + deliveryFee + tax, with a fixed 2.99 delivery fee
//   - statusTime is refreshed on every status change and never precedes orderTime
//   - Higher priority orders are dispatched first; equal priorities keep arrival order
//
// The three access structures hold ids only. Field access always goes through
// the Store, so a status change is visible whichever structure located the order.
package order
