package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID                int64   `gorm:"primaryKey;autoIncrement"`
	Name              string  `gorm:"type:varchar(100);not null"`
	Info              string  `gorm:"type:text;not null;default:''"`
	EmailAddress      string  `gorm:"type:varchar(254);not null"`
	Rating            string  `gorm:"type:varchar(1);not null;default:'B'"`
	CompanyName       string  `gorm:"type:varchar(100);not null;default:''"`
	VATNumber         string  `gorm:"column:vat_number;type:varchar(30);not null;default:''"`
	Address           string  `gorm:"type:varchar(250);not null;default:''"`
	IdentityAccountID *string `gorm:"type:varchar(64);uniqueIndex:idx_customers_identity_account_id"`
	Version           int64   `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
