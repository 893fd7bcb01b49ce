// Package account models customer accounts and the username-ordered directory
// that holds them.
//
// An Account carries the credentials and delivery defaults used at checkout
// together with the loyalty balance earned from completed purchases.
// Directory is a binary search tree keyed by username; it never rebalances,
// which keeps its in-order walk stable across saves and reloads.
package account
