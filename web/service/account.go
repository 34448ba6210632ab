package service

import (
	"errors"
	"fmt"

	"github.com/nurcom/crm/config"
	"github.com/nurcom/crm/database"
	"github.com/nurcom/crm/database/model"
	"github.com/nurcom/crm/logger"
	"github.com/nurcom/crm/util/crypto"
)

// Recovery requests are regular service requests carrying a fixed marker so
// the admin can spot them in the queue.
const (
	recoveryMarkerName = "PASSWORD RESET"
	recoveryService    = "Technical support"
)

var (
	ErrEmailTaken       = errors.New("email is already taken")
	ErrEmailNotFound    = errors.New("email not found")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWrongPassword    = errors.New("wrong current password")
)

// AccountService implements registration, credential checks, password
// maintenance and the human-mediated recovery flow.
type AccountService struct{}

// Register creates a client account with a bcrypt-hashed password.
func (s *AccountService) Register(email string, password string) (*model.Account, error) {
	db := database.GetDB()

	var count int64
	err := db.Model(model.Account{}).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Email:    email,
		Password: hashedPassword,
		Role:     model.RoleClient,
	}
	if err := db.Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount returns the account for email, or nil when none exists.
func (s *AccountService) GetAccount(email string) (*model.Account, error) {
	db := database.GetDB()

	account := &model.Account{}
	err := db.Model(model.Account{}).
		Where("email = ?", email).
		First(account).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return account, nil
}

// CheckAccount returns the account iff it exists and the password verifies.
func (s *AccountService) CheckAccount(email string, password string) *model.Account {
	account, err := s.GetAccount(email)
	if err != nil {
		logger.Warning("check account err:", err)
		return nil
	}
	if account == nil {
		return nil
	}
	if !crypto.CheckPasswordHash(account.Password, password) {
		return nil
	}
	return account
}

// SetPassword overwrites the stored hash unconditionally. A missing email is
// a silent no-op.
func (s *AccountService) SetPassword(email string, password string) error {
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	return db.Model(model.Account{}).
		Where("email = ?", email).
		Update("password", hashedPassword).
		Error
}

// UpdatePassword is the self-service password change. The current password
// must verify and the new password must match its confirmation; nothing is
// mutated otherwise.
func (s *AccountService) UpdatePassword(email string, current string, newPassword string, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	account, err := s.GetAccount(email)
	if err != nil {
		return err
	}
	if account == nil || !crypto.CheckPasswordHash(account.Password, current) {
		return ErrWrongPassword
	}

	return s.SetPassword(email, newPassword)
}

// ListClients returns all non-admin accounts for the admin panel.
func (s *AccountService) ListClients() ([]*model.Account, error) {
	db := database.GetDB()

	var accounts []*model.Account
	err := db.Model(model.Account{}).
		Where("role <> ?", model.RoleAdmin).
		Find(&accounts).
		Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// RequestPasswordReset records a recovery request in the admin queue. The
// email must belong to an existing account; nothing is inserted otherwise.
// The reset itself is performed later by the admin.
func (s *AccountService) RequestPasswordReset(email string) error {
	account, err := s.GetAccount(email)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrEmailNotFound
	}

	db := database.GetDB()
	request := &model.ServiceRequest{
		UserEmail: email,
		Name:      recoveryMarkerName,
		Contact:   email,
		Service:   recoveryService,
		Message:   fmt.Sprintf("Password reset requested for %s", email),
		Status:    model.DefaultStatus,
	}
	if err := db.Create(request).Error; err != nil {
		return err
	}
	logger.Infof("password reset requested for %s", email)
	return nil
}

// ResetPassword is the admin-side resolution of a recovery request: the
// target account's password becomes the configured default. The new password
// is logged for the operator, matching the manual hand-off of the flow.
func (s *AccountService) ResetPassword(email string) error {
	defaultPassword := config.GetDefaultResetPassword()
	if err := s.SetPassword(email, defaultPassword); err != nil {
		return err
	}
	logger.Infof("password for %s reset to %s", email, defaultPassword)
	return nil
}
