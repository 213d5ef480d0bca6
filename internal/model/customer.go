// internal/model/customer.go
package model

import "time"

type Customer struct {
	ID           int       `db:"id" json:"id"`
	CompanyName  string    `db:"company_name" json:"company_name"`
	Address      string    `db:"address" json:"address"`
	City         string    `db:"city" json:"city"`
	MobileNumber string    `db:"mobile_number" json:"mobile_number"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ToMap returns the record as it is written in API responses.
func (c Customer) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":            c.ID,
		"company_name":  c.CompanyName,
		"address":       c.Address,
		"city":          c.City,
		"mobile_number": c.MobileNumber,
		"created_at":    isoTime(c.CreatedAt),
		"updated_at":    isoTime(c.UpdatedAt),
	}
}

// isoTime formats t as RFC 3339 in UTC, or nil for the zero time.
func isoTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}
