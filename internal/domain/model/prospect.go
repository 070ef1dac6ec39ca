package model

// Contact groups the identity attributes the processor accepts for one side
// of an order (billing or shipping).
type Contact struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Address1   string
	Address2   string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Prospect is pass-through customer identity. The adapter enforces nothing
// here beyond presence where an operation requires it; empty fields are simply
// omitted from the wire request.
type Prospect struct {
	Billing  Contact
	Shipping Contact
}
