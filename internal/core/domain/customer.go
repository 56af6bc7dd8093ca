package domain

import (
	"errors"
	"time"
)

var ErrCustomerExists = errors.New("customer already exists")

// Customer is a registered end user of the booking application (collection
// "users"). Read-mostly here; the dashboard groups customers by signup date.
type Customer struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	UserName  string      `json:"userName" bson:"userName"`
	UserEmail string      `json:"userEmail" bson:"userEmail"`
	UserPhone string      `json:"userPhone,omitempty" bson:"userPhone,omitempty"`
	UserDatas []time.Time `json:"userDatas" bson:"userDatas"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
}

// Cliente is a walk-in client record maintained from the admin UI (collection
// "clientes"), distinct from the booking app's own customer accounts.
type Cliente struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Nome         string    `json:"nome" bson:"nome"`
	Email        string    `json:"email" bson:"email"`
	Telefone     string    `json:"telefone" bson:"telefone"`
	DataCadastro time.Time `json:"dataCadastro" bson:"dataCadastro"`
}
