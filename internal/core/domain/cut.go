package domain

import (
	"errors"
	"time"
)

// CutStatus represents the lifecycle state of a cut (appointment).
type CutStatus string

const (
	StatusScheduled CutStatus = "agendado"
	StatusConfirmed CutStatus = "confirmado"
	StatusCancelled CutStatus = "cancelado"
	StatusDone      CutStatus = "realizado"

	// StatusClosed ("fechado") is not part of the booking schema enum but is
	// present in historical data and is treated as realized revenue. Kept out
	// of IsValid on purpose; see RealizedStatuses.
	StatusClosed CutStatus = "fechado"
)

// RealizedStatuses are the statuses that count as realized revenue.
var RealizedStatuses = []CutStatus{StatusConfirmed, StatusClosed}

// ExpectedStatuses are the statuses that count as expected (future) revenue.
var ExpectedStatuses = []CutStatus{StatusScheduled}

// IsValid reports whether s is part of the booking schema enum.
// StatusClosed deliberately fails this check: it is a legacy value that the
// schema never declared.
func (s CutStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusDone:
		return true
	}
	return false
}

// ServiceType identifies the service performed on a cut.
type ServiceType string

const (
	ServiceHaircut      ServiceType = "cabelo"
	ServiceHaircutBeard ServiceType = "cabelo e barba"
)

const (
	priceHaircut      = 45.00
	priceHaircutBeard = 65.00
)

// Price returns the unit price for the service type. Unrecognized values map
// to 0 rather than an error; unknown services simply contribute nothing to
// revenue totals.
func (s ServiceType) Price() float64 {
	switch s {
	case ServiceHaircut:
		return priceHaircut
	case ServiceHaircutBeard:
		return priceHaircutBeard
	default:
		return 0
	}
}

var ErrUnknownTenant = errors.New("unknown tenant")

// Cut is a scheduled or completed haircut service record. Cuts are created by
// the public booking application; this system only reads and aggregates them.
type Cut struct {
	ID       string      `json:"id" bson:"_id,omitempty"`
	Nome     string      `json:"nome" bson:"nome"`
	Telefone string      `json:"telefone" bson:"telefone"`
	Status   CutStatus   `json:"status" bson:"status"`
	Data     time.Time   `json:"data" bson:"data"`
	Horario  string      `json:"horario" bson:"horario"`
	Barbeiro string      `json:"barbeiro" bson:"barbeiro"`
	Service  ServiceType `json:"service" bson:"service"`
	UserID   string      `json:"userId" bson:"userId"`
}
