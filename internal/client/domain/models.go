// Package domain contains persistence models for invoiced clients.
package domain

import "time"

// Client is a billed party, deduplicated by case-insensitive name.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `gorm:"not null;default:''" json:"address"`
	City      string    `gorm:"not null;default:''" json:"city"`
	Siren     string    `gorm:"not null;default:''" json:"siren"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Client) TableName() string { return "clients" }
