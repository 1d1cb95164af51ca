package domain

import "strings"

// Address is a value object, compared by its fields. It is stored as a JSON
// column and shipped over the wire as-is, hence the tags.
type Address struct {
	Street       string `json:"street"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
}

func (a Address) FullAddress() string {
	parts := []string{a.Street}
	if a.AddressLine2 != "" {
		parts = append(parts, a.AddressLine2)
	}
	parts = append(parts, a.City, a.State+" "+a.ZipCode, a.Country)
	return strings.Join(parts, ", ")
}

func (a Address) Equals(other Address) bool { return a == other }
