package model

import "time"

// IdentityAccountModel mirrors the 'identity_accounts' table.
type IdentityAccountModel struct {
	ID           string             `gorm:"type:varchar(64);primaryKey"`
	UserName     string             `gorm:"type:varchar(100);not null;uniqueIndex:idx_identity_accounts_user_name"`
	Email        string             `gorm:"type:varchar(254);not null;default:''"`
	PasswordHash string             `gorm:"type:varchar(255);not null"`
	Roles        []AccountRoleModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityAccountModel) TableName() string {
	return "identity_accounts"
}

// AccountRoleModel mirrors the 'identity_account_roles' join table. Each row grants one role.
type AccountRoleModel struct {
	AccountID string `gorm:"type:varchar(64);primaryKey"`
	Role      string `gorm:"type:varchar(32);primaryKey;index:idx_identity_account_roles_role"`
}

// TableName explicitly sets the table name for GORM.
func (AccountRoleModel) TableName() string {
	return "identity_account_roles"
}
