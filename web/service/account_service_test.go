package service

import (
	"os"
	"testing"

	"github.com/nurcom/crm/config"
	"github.com/nurcom/crm/database"
	"github.com/nurcom/crm/database/model"
	"github.com/nurcom/crm/util/crypto"

	"github.com/stretchr/testify/assert"
)

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestRegisterAndCheck(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	account, err := service.Register("a@x.com", "pw123")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleClient, account.Role)
	assert.NotEqual(t, "pw123", account.Password)

	assert.NotNil(t, service.CheckAccount("a@x.com", "pw123"))
	assert.Nil(t, service.CheckAccount("a@x.com", "wrong"))
	assert.Nil(t, service.CheckAccount("missing@x.com", "pw123"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	_, err := service.Register("a@x.com", "pw123")
	assert.NoError(t, err)

	_, err = service.Register("a@x.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The original credentials are untouched
	assert.NotNil(t, service.CheckAccount("a@x.com", "pw123"))
	assert.Nil(t, service.CheckAccount("a@x.com", "other"))
}

func TestBootstrapAdminIdempotent(t *testing.T) {
	setup()
	defer teardown()

	// setup already ran InitDB once; run it again on the same file
	err := database.InitDB("test.db")
	assert.NoError(t, err)

	var count int64
	err = database.GetDB().Model(model.Account{}).
		Where("role = ?", model.RoleAdmin).
		Count(&count).
		Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	service := AccountService{}
	admin := service.CheckAccount(config.GetAdminEmail(), config.GetAdminBootstrapPassword())
	assert.NotNil(t, admin)
	assert.Equal(t, model.RoleAdmin, admin.Role)
}

func TestUpdatePassword(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}
	_, err := service.Register("a@x.com", "old-pw")
	assert.NoError(t, err)

	// Mismatched confirmation mutates nothing
	err = service.UpdatePassword("a@x.com", "old-pw", "new-pw", "different")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.NotNil(t, service.CheckAccount("a@x.com", "old-pw"))

	// Wrong current password mutates nothing
	err = service.UpdatePassword("a@x.com", "wrong", "new-pw", "new-pw")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.NotNil(t, service.CheckAccount("a@x.com", "old-pw"))

	// Correct change: old stops verifying, new verifies
	err = service.UpdatePassword("a@x.com", "old-pw", "new-pw", "new-pw")
	assert.NoError(t, err)
	assert.Nil(t, service.CheckAccount("a@x.com", "old-pw"))
	assert.NotNil(t, service.CheckAccount("a@x.com", "new-pw"))
}

func TestSetPasswordMissingEmailIsNoop(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	err := service.SetPassword("missing@x.com", "whatever")
	assert.NoError(t, err)

	account, err := service.GetAccount("missing@x.com")
	assert.NoError(t, err)
	assert.Nil(t, account)
}

func TestResetPassword(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}
	_, err := service.Register("a@x.com", "pw123")
	assert.NoError(t, err)

	err = service.ResetPassword("a@x.com")
	assert.NoError(t, err)

	assert.Nil(t, service.CheckAccount("a@x.com", "pw123"))
	assert.NotNil(t, service.CheckAccount("a@x.com", config.GetDefaultResetPassword()))
}

func TestRequestPasswordReset(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}
	_, err := service.Register("a@x.com", "pw123")
	assert.NoError(t, err)

	countRequests := func() int64 {
		var count int64
		err := database.GetDB().Model(model.ServiceRequest{}).Count(&count).Error
		assert.NoError(t, err)
		return count
	}

	// Unknown email inserts nothing
	err = service.RequestPasswordReset("missing@x.com")
	assert.ErrorIs(t, err, ErrEmailNotFound)
	assert.Equal(t, int64(0), countRequests())

	// Known email inserts exactly one tagged request
	err = service.RequestPasswordReset("a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), countRequests())

	var request model.ServiceRequest
	err = database.GetDB().Model(model.ServiceRequest{}).First(&request).Error
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", request.UserEmail)
	assert.Equal(t, recoveryMarkerName, request.Name)
	assert.Equal(t, recoveryService, request.Service)
	assert.Equal(t, model.DefaultStatus, request.Status)
}

func TestListClientsExcludesAdmin(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}
	_, err := service.Register("a@x.com", "pw123")
	assert.NoError(t, err)
	_, err = service.Register("b@x.com", "pw456")
	assert.NoError(t, err)

	clients, err := service.ListClients()
	assert.NoError(t, err)
	assert.Len(t, clients, 2)
	for _, client := range clients {
		assert.Equal(t, model.RoleClient, client.Role)
	}
}

func TestPasswordsAreHashed(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}
	_, err := service.Register("a@x.com", "pw123")
	assert.NoError(t, err)

	account, err := service.GetAccount("a@x.com")
	assert.NoError(t, err)
	assert.NotNil(t, account)
	assert.True(t, crypto.CheckPasswordHash(account.Password, "pw123"))
	assert.NotContains(t, account.Password, "pw123")
}
