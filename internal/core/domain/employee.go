package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")

// Employee is a shop employee (collection "funcionarios"). INSS and FGTS are
// percentage deduction rates over the gross salary. DataContratacao is stored
// as a free-form string and never parsed.
type Employee struct {
	ID              string  `json:"id" bson:"_id,omitempty"`
	Nome            string  `json:"nome" bson:"nome"`
	SalarioBruto    float64 `json:"salarioBruto" bson:"salarioBruto"`
	INSS            float64 `json:"inss" bson:"inss"`
	FGTS            float64 `json:"fgts" bson:"fgts"`
	DataContratacao string  `json:"dataContratacao" bson:"dataContratacao"`
}

// SalarioLiquido returns the net salary: gross minus the INSS and FGTS
// percentage deductions. Derived at display time, never persisted.
func (e Employee) SalarioLiquido() float64 {
	return e.SalarioBruto - e.SalarioBruto*e.INSS/100 - e.SalarioBruto*e.FGTS/100
}
