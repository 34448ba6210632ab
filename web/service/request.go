package service

import (
	"github.com/nurcom/crm/database"
	"github.com/nurcom/crm/database/model"
	"github.com/nurcom/crm/logger"
)

// RequestService implements the service-request lifecycle: submission,
// owner-scoped and admin-wide listing, and the admin status overwrite.
type RequestService struct{}

// Submit inserts a new request owned by owner (an account email or the
// anonymous sentinel). A missing name or contact inserts nothing and returns
// nil so the caller still redirects normally, matching the original
// submission behavior.
func (s *RequestService) Submit(owner string, name string, contact string, service string, message string) error {
	if name == "" || contact == "" {
		logger.Warningf("dropping request from %s: name or contact missing", owner)
		return nil
	}

	db := database.GetDB()
	request := &model.ServiceRequest{
		UserEmail: owner,
		Name:      name,
		Contact:   contact,
		Service:   service,
		Message:   message,
		Status:    model.DefaultStatus,
	}
	return db.Create(request).Error
}

// ListForOwner returns the requests owned by email in insertion order.
func (s *RequestService) ListForOwner(email string) ([]*model.ServiceRequest, error) {
	db := database.GetDB()

	var requests []*model.ServiceRequest
	err := db.Model(model.ServiceRequest{}).
		Where("user_email = ?", email).
		Find(&requests).
		Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// ListAll returns every request, most recent first.
func (s *RequestService) ListAll() ([]*model.ServiceRequest, error) {
	db := database.GetDB()

	var requests []*model.ServiceRequest
	err := db.Model(model.ServiceRequest{}).
		Order("id DESC").
		Find(&requests).
		Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus overwrites a request's status. Any string is accepted and a
// nonexistent id is a silent no-op.
func (s *RequestService) UpdateStatus(id int, status string) error {
	db := database.GetDB()
	return db.Model(model.ServiceRequest{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}
