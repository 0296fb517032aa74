// Package domain contains persistence models for issuing companies.
package domain

import "time"

// Company is the invoice issuer profile.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `gorm:"not null;default:''" json:"address"`
	Email     string    `gorm:"not null;default:''" json:"email"`
	IFU       string    `gorm:"column:ifu;not null;default:''" json:"ifu"`
	VMCF      string    `gorm:"column:vmcf;not null;default:''" json:"vmcf"`
	Paypal    string    `gorm:"not null;default:''" json:"paypal"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Company) TableName() string { return "companies" }
