package app

import (
	"github.com/rs/zerolog"

	"hotel_desk/internal/domain"
)

type CustomerService struct {
	store domain.DocumentStore
	log   zerolog.Logger
}

func NewCustomerService(store domain.DocumentStore, log zerolog.Logger) *CustomerService {
	return &CustomerService{store: store, log: log}
}

// Create persists the customer immediately. An existing record under the
// same id is overwritten; there is no existence check.
func (s *CustomerService) Create(name, email, id string) (*domain.Customer, error) {
	cid, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	c := &domain.Customer{Name: name, Email: email, CustomerID: cid}
	if err := s.store.Save(c.Key(), c); err != nil {
		return nil, err
	}
	s.log.Info().Str("customer_id", id).Msg("customer created")
	return c, nil
}

func (s *CustomerService) Load(id string) (*domain.Customer, error) {
	cid, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	var c domain.Customer
	if err := s.store.Load(domain.CustomerKey(cid), &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Modify updates only the provided fields and re-persists the full record.
func (s *CustomerService) Modify(c *domain.Customer, newName, newEmail *string) error {
	if newName != nil {
		c.Name = *newName
	}
	if newEmail != nil {
		c.Email = *newEmail
	}
	return s.store.Save(c.Key(), c)
}

func (s *CustomerService) Delete(id string) error {
	cid, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(domain.CustomerKey(cid)); err != nil {
		return err
	}
	s.log.Info().Str("customer_id", id).Msg("customer deleted")
	return nil
}
