package domain

import "errors"

var (
	// ErrSlotTaken means the requested (date, time) pair is already held by
	// a committed booking, whether caught by the optimistic pre-check or by
	// the storage constraint.
	ErrSlotTaken = errors.New("slot already booked")

	// ErrUnknownSlot means the requested time is not in the configured set
	// of bookable slot starting times.
	ErrUnknownSlot = errors.New("time is not a bookable slot")

	ErrNotFound = errors.New("not found")
)
