package types

import (
	"strings"
)

// Address is one entry in the user's address book. The json keys match the
// records the mobile app persisted.
type Address struct {
	Kind        string `json:"type"`
	AddressText string `json:"address"`
	Pincode     string `json:"pincode"`
	Phone       string `json:"phone"`
	IsDefault   bool   `json:"isDefault"`
}

// Validate reports whether the entry carries the minimum fields the UI needs.
func (a Address) Validate() error {
	if strings.TrimSpace(a.Kind) == "" {
		return errMissing("type")
	}
	if strings.TrimSpace(a.AddressText) == "" {
		return errMissing("address")
	}
	if strings.TrimSpace(a.Pincode) == "" {
		return errMissing("pincode")
	}
	return nil
}

type missingFieldError string

func errMissing(field string) error {
	return missingFieldError(field)
}

func (m missingFieldError) Error() string {
	return "address: missing " + string(m)
}
