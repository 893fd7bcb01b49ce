package order

import (
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/pkg/errs"
)

// Priority is the delivery tier of an order. Larger values are dispatched first.
type Priority int

const (
	// UnknownPriority catches uninitialized values.
	UnknownPriority Priority = iota
	Low
	Normal
	High
	Express
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		UnknownPriority: "Unknown",
		Low:             "Low",
		Normal:          "Normal",
		High:            "High",
		Express:         "Express",
	}
}

// getDeliveryWindows maps each tier to the promised time between order placement and arrival.
func getDeliveryWindows() map[Priority]time.Duration {
	//nolint:exhaustive // UnknownPriority has no delivery window
	return map[Priority]time.Duration{
		Low:     4 * time.Hour,
		Normal:  2 * time.Hour,
		High:    time.Hour,
		Express: 30 * time.Minute,
	}
}

// Validate reports whether p is one of Low, Normal, High or Express.
func (p Priority) Validate() error {
	if p < Low || p > Express {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return "Unknown"
}

// DeliveryWindow returns how long after placement an order of this tier is expected to arrive.
func (p Priority) DeliveryWindow() time.Duration {
	return getDeliveryWindows()[p]
}

// ParsePriority accepts a tier name in any letter case.
func ParsePriority(s string) (Priority, error) {
	for p, name := range getPriorityStrings() {
		if p != UnknownPriority && strings.EqualFold(name, s) {
			return p, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%q is not a valid priority", s))
}
