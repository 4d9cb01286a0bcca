package models

import "time"

// Client is a customer of the business.
type Client struct {
	ID           int64
	Name         string
	TaxID        string // CNPJ or CPF, unvalidated
	Phone        string
	Email        string
	RegisteredAt time.Time
}

// NewClient carries the operator-supplied fields of a client registration.
type NewClient struct {
	Name  string
	TaxID string
	Phone string
	Email string
}
