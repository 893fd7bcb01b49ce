// Package services provides the domain services that orchestrate business operations
// across the order, account, catalog, promo and cart models.
//
// The package includes:
//   - OrderLifecycle: the single context object that owns every in-memory pool
//     of the delivery system and runs checkout, lookup, status changes, dispatch
//     and tracking against them
//
// OrderLifecycle keeps one authoritative record per order in an order.Store. The
// admission stack, dispatch queue and history index hold only order ids, so a status
// change is visible through every access path.
package services
