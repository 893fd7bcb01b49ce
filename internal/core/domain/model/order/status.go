package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The usual path is
//
//	Pending -> Confirmed -> Preparing -> OutForDelivery -> Delivered
//
// and an order may be Cancelled at any point. An operator may set any valid
// status directly, so transitions are not restricted beyond validity.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of a freshly checked-out order awaiting confirmation.
	Pending

	// Confirmed means an operator accepted the order for processing.
	Confirmed

	// Preparing means the kitchen is working on the order.
	Preparing

	// OutForDelivery means the order left with a courier.
	OutForDelivery

	// Delivered means the customer received the order.
	Delivered

	// Cancelled means the order will not be fulfilled.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		Preparing:      "Preparing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any value outside Pending..Cancelled are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Stage returns the position of the status on the delivery progress track:
// Pending 0, Confirmed 1, Preparing 2, OutForDelivery 3, Delivered 4.
// Cancelled and invalid statuses are off the track and report false.
func (s Status) Stage() (int, bool) {
	if s < Pending || s > Delivered {
		return 0, false
	}
	return int(s - Pending), true
}

// IsFinal reports whether no further progress is expected.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// ParseStatus accepts a status name in any letter case.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}
