package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrSlotTaken = errors.New("venue is already booked for this date and time slot")

	ErrTerminalStatus = errors.New("booking is already in a terminal status")
)
