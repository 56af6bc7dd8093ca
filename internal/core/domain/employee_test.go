package domain

import "testing"

func TestEmployee_SalarioLiquido(t *testing.T) {
	e := Employee{SalarioBruto: 2000, INSS: 8, FGTS: 2}
	// 2000 - 160 - 40
	if got := e.SalarioLiquido(); got != 1800 {
		t.Errorf("SalarioLiquido = %v, want 1800", got)
	}
}

func TestEmployee_SalarioLiquido_NoDeductions(t *testing.T) {
	e := Employee{SalarioBruto: 1500}
	if got := e.SalarioLiquido(); got != 1500 {
		t.Errorf("SalarioLiquido = %v, want 1500", got)
	}
}
