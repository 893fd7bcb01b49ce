// Package kernel provides core domain primitives shared by the food delivery model.
//
// The package includes:
//   - Money: an immutable decimal amount with cent rounding used for prices,
//     subtotals, discounts, fees, tax and totals
//
// Money wraps github.com/shopspring/decimal so that order arithmetic such as
// "8% of 28.97" is exact until it is explicitly rounded to two places.
package kernel
