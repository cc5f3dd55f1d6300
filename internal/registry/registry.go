// Package registry keeps an in-process roster of customers. It assigns
// sequential ids and preserves insertion order; it holds no external
// resources and lives only as long as the process.
package registry

import (
	"errors"

	"github.com/skoerner/customers/pkg/customer"
)

// ErrCustomerNotFound is returned when no customer carries the given id.
var ErrCustomerNotFound = errors.New("customer not found")

type Registry struct {
	nextID    int64
	customers []*customer.Customer
}

func New(firstID int64) *Registry {
	return &Registry{nextID: firstID}
}

// Add registers a customer. A customer still carrying the unassigned id
// sentinel receives the next sequential id; an already assigned id is kept.
func (r *Registry) Add(c *customer.Customer) *customer.Customer {
	if c.ID() == customer.UnassignedID {
		c.SetID(r.nextID)
		r.nextID++
	}
	r.customers = append(r.customers, c)
	return c
}

func (r *Registry) FindByID(id int64) (*customer.Customer, error) {
	for _, c := range r.customers {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// DeleteByID removes the first customer carrying the given id, keeping the
// relative order of the rest.
func (r *Registry) DeleteByID(id int64) error {
	for i, c := range r.customers {
		if c.ID() == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return ErrCustomerNotFound
}

// All returns the registered customers in insertion order.
func (r *Registry) All() []*customer.Customer {
	customers := make([]*customer.Customer, len(r.customers))
	copy(customers, r.customers)
	return customers
}

func (r *Registry) Count() int {
	return len(r.customers)
}
