// Package catalog holds the menu of purchasable items and their remaining stock.
package catalog
