package entities

import "strings"

// CustomerAddress is the postal address collected during checkout.

type CustomerAddress struct {
	Street  string `json:"street" validate:"required"`
	Number  string `json:"number" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required,len=2"`
	ZipCode string `json:"zip_code" validate:"required"`
}

// CustomerRecord is the buyer data collected before payment. It is validated
// as a unit: the checkout session never accepts a partial record, so nothing
// downstream re-checks individual fields.

type CustomerRecord struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Phone    string          `json:"phone" validate:"required"`
	Document string          `json:"document" validate:"required"`
	Address  CustomerAddress `json:"address" validate:"required"`
}

// FirstLastName splits the full name into the payer first/last fields the
// payment provider expects. A single-word name repeats into the last name.
func (c CustomerRecord) FirstLastName() (string, string) {
	parts := strings.Fields(c.Name)
	if len(parts) == 0 {
		return "", ""
	}
	first := parts[0]
	last := strings.Join(parts[1:], " ")
	if last == "" {
		last = first
	}
	return first, last
}
