package domain

import "regexp"

// Courier represents a delivery courier ("livreur").
type Courier struct {
	ID     int64
	Name   string
	Phone  string
	Status CourierStatus
}

// Active reports whether the courier can receive packages.
func (c *Courier) Active() bool {
	return c.Status == CourierActive
}

var rePhone = regexp.MustCompile(`^\+[0-9]{8,15}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
