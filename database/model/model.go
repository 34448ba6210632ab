// Package model defines the persisted entities of the CRM panel.
package model

import "time"

// Account roles. Exactly one account ever holds RoleAdmin.
const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// AnonymousOwner marks service requests submitted without a session.
const AnonymousOwner = "anonymous"

// DefaultStatus is assigned to every newly created service request.
const DefaultStatus = "New request"

// Account is a registered user, keyed by email. Password holds the bcrypt
// hash, never the plaintext.
type Account struct {
	Email        string `json:"email" gorm:"primaryKey"`
	Password     string `json:"-" gorm:"not null"`
	Role         string `json:"role" gorm:"not null;default:client"`
	TelegramId   string `json:"telegramId"`
	RecoveryCode string `json:"-"`
}

// ServiceRequest is a customer inquiry tracked through a mutable status.
// UserEmail is a soft reference: it may name a registered account or the
// anonymous sentinel, and ownership never changes after creation.
type ServiceRequest struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserEmail string    `json:"userEmail" gorm:"index"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Status    string    `json:"status" gorm:"default:'New request'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
