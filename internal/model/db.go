package model

import "time"

type InvoiceRecord struct {
	ID              uint    `gorm:"primaryKey"`
	InvoiceID       string  `gorm:"size:64;uniqueIndex;not null"` // stripe invoice id
	CustomerEmail   string  `gorm:"size:255;index;not null"`
	Subtotal        float64 `gorm:"not null"`
	DiscountPercent int     `gorm:"not null"`
	Total           string  `gorm:"size:32;not null"` // formatted, e.g. "19.00"
	HostedURL       string  `gorm:"size:512"`
	CreatedAt       time.Time
}
