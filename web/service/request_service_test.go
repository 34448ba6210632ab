package service

import (
	"testing"

	"github.com/nurcom/crm/database"
	"github.com/nurcom/crm/database/model"

	"github.com/stretchr/testify/assert"
)

func TestSubmitMissingFieldsInsertsNothing(t *testing.T) {
	setup()
	defer teardown()

	service := RequestService{}

	tests := []struct {
		name    string
		reqName string
		contact string
	}{
		{"missing name", "", "123456"},
		{"missing contact", "Alice", ""},
		{"missing both", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := service.Submit(model.AnonymousOwner, tc.reqName, tc.contact, "Internet", "hello")
			assert.NoError(t, err)

			var count int64
			err = database.GetDB().Model(model.ServiceRequest{}).Count(&count).Error
			assert.NoError(t, err)
			assert.Equal(t, int64(0), count)
		})
	}
}

func TestSubmitAndOwnershipIsolation(t *testing.T) {
	setup()
	defer teardown()

	service := RequestService{}

	assert.NoError(t, service.Submit("a@x.com", "Alice", "111", "Internet", "slow uplink"))
	assert.NoError(t, service.Submit("b@x.com", "Bob", "222", "TV", "no signal"))
	assert.NoError(t, service.Submit(model.AnonymousOwner, "Guest", "333", "", ""))

	forA, err := service.ListForOwner("a@x.com")
	assert.NoError(t, err)
	assert.Len(t, forA, 1)
	assert.Equal(t, "Alice", forA[0].Name)
	assert.Equal(t, model.DefaultStatus, forA[0].Status)

	forB, err := service.ListForOwner("b@x.com")
	assert.NoError(t, err)
	assert.Len(t, forB, 1)
	assert.Equal(t, "Bob", forB[0].Name)

	all, err := service.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListAllMostRecentFirst(t *testing.T) {
	setup()
	defer teardown()

	service := RequestService{}

	assert.NoError(t, service.Submit("a@x.com", "Alice", "111", "Internet", "first"))
	assert.NoError(t, service.Submit("a@x.com", "Alice", "111", "Internet", "second"))
	assert.NoError(t, service.Submit("a@x.com", "Alice", "111", "Internet", "third"))

	all, err := service.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Message)
	assert.Equal(t, "second", all[1].Message)
	assert.Equal(t, "first", all[2].Message)
	assert.Greater(t, all[0].Id, all[1].Id)
	assert.Greater(t, all[1].Id, all[2].Id)
}

func TestUpdateStatus(t *testing.T) {
	setup()
	defer teardown()

	service := RequestService{}

	assert.NoError(t, service.Submit("a@x.com", "Alice", "111", "Internet", "hello"))
	all, err := service.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	err = service.UpdateStatus(all[0].Id, "In progress")
	assert.NoError(t, err)

	all, err = service.ListAll()
	assert.NoError(t, err)
	assert.Equal(t, "In progress", all[0].Status)
}

func TestUpdateStatusMissingIdIsNoop(t *testing.T) {
	setup()
	defer teardown()

	service := RequestService{}

	err := service.UpdateStatus(9999, "In progress")
	assert.NoError(t, err)

	var count int64
	err = database.GetDB().Model(model.ServiceRequest{}).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
