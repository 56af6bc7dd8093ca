package domain

import (
	"errors"
	"time"
)

var ErrExpenseNotFound = errors.New("expense not found")

// Recurrence classifies how an expense repeats.
type Recurrence string

const (
	// RecurrenceIndividual is a one-off expense, counted only in the calendar
	// month its date falls in.
	RecurrenceIndividual Recurrence = "individual"
	// RecurrencePeriodica repeats every month and always counts.
	RecurrencePeriodica Recurrence = "periodica"
)

// IsValid reports whether r is a known recurrence value.
func (r Recurrence) IsValid() bool {
	return r == RecurrenceIndividual || r == RecurrencePeriodica
}

// Expense is an operating cost entry (collection "despesas").
type Expense struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Nome        string     `json:"nome" bson:"nome"`
	Valor       float64    `json:"valor" bson:"valor"`
	Recorrencia Recurrence `json:"recorrencia" bson:"recorrencia"`
	Data        time.Time  `json:"data" bson:"data"`
}

// CountsIn reports whether the expense applies to the month containing now:
// recurring expenses always do, one-offs only when dated in that month.
func (e Expense) CountsIn(now time.Time) bool {
	if e.Recorrencia == RecurrencePeriodica {
		return true
	}
	return SameMonth(e.Data, now)
}
