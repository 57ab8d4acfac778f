package domain

import "fmt"

type Customer struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	CustomerID ID     `json:"customer_id"`
}

// CustomerKey derives the storage key for a customer id.
func CustomerKey(id ID) ID { return "customer_" + id }

func (c *Customer) Key() ID { return CustomerKey(c.CustomerID) }

func (c *Customer) Validate() error {
	if c.CustomerID == "" {
		return fmt.Errorf("%w: customer_id missing", ErrMalformed)
	}
	return nil
}

// Display renders the customer record card.
func (c *Customer) Display() string {
	return fmt.Sprintf("Name: %s, E-mail: %s, Customer ID: %s", c.Name, c.Email, c.CustomerID)
}
