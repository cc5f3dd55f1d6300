// Package customer provides the customer entity: an identity, a split
// first/last name and an ordered list of contact strings. It is a plain
// in-memory value type with no I/O and no internal locking; a host sharing
// one instance across goroutines must synchronize externally.
package customer

import "strings"

// UnassignedID is the id of a customer no identity has been assigned to yet.
const UnassignedID int64 = -1

// Customer is a mutable customer record. Fields are reachable only through
// its methods; every stored string has been passed through Normalize first.
type Customer struct {
	id        int64
	firstName string
	lastName  string
	contacts  []string
}

// New returns a customer with all defaults: unassigned id, empty name
// parts, no contacts.
func New() *Customer {
	return &Customer{id: UnassignedID}
}

// NewFromName returns a customer whose name parts are parsed from the given
// free-text name via SplitName.
func NewFromName(name string) (*Customer, error) {
	c := New()
	if err := c.SplitName(name); err != nil {
		return nil, err
	}
	return c, nil
}

// ID returns the customer's id, UnassignedID if none was set.
func (c *Customer) ID() int64 {
	return c.id
}

// SetID overwrites the customer's id unconditionally.
func (c *Customer) SetID(id int64) *Customer {
	c.id = id
	return c
}

// FirstName returns the normalized first name, empty if unknown.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the normalized last name, empty if unknown.
func (c *Customer) LastName() string {
	return c.lastName
}

// SetName stores both name parts, normalized. Empty strings are legal
// values meaning "unknown".
func (c *Customer) SetName(first string, last string) *Customer {
	c.firstName = Normalize(first)
	c.lastName = Normalize(last)
	return c
}

// SetFullName parses a free-text name via SplitName and stores the result.
func (c *Customer) SetFullName(name string) (*Customer, error) {
	if err := c.SplitName(name); err != nil {
		return c, err
	}
	return c, nil
}

// SplitName splits a free-text name into first and last name and stores
// both. It returns an InvalidArgumentErr when name is empty after trimming
// whitespace. Splitting rules:
//
//   - "Lastname, Firstname" convention: if the normalized name contains a
//     comma or semicolon, it is split in two at the first occurrence —
//     everything before becomes the last name, everything after the first
//     name.
//   - Otherwise the name is split on whitespace; the final token becomes
//     the last name and any preceding tokens, joined by single spaces, the
//     first name. A single token is entirely a last name.
//
// This is a best-effort heuristic with no notion of honorifics, suffixes
// or multi-part surnames.
func (c *Customer) SplitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewInvalidArgumentErr("name", "name must not be empty")
	}

	n := Normalize(name)
	if i := strings.IndexAny(n, ",;"); i >= 0 {
		c.lastName = Normalize(n[:i])
		c.firstName = Normalize(n[i+1:])
		return nil
	}

	parts := strings.Fields(n)
	switch len(parts) {
	case 0: // delimiter-only input normalizes to nothing
		c.firstName = ""
		c.lastName = ""
	case 1:
		c.firstName = ""
		c.lastName = parts[0]
	default:
		c.firstName = strings.Join(parts[:len(parts)-1], " ")
		c.lastName = parts[len(parts)-1]
	}
	return nil
}

// ContactsCount returns the number of contact entries.
func (c *Customer) ContactsCount() int {
	return len(c.contacts)
}

// Contacts returns the contacts in insertion order as a snapshot; mutating
// the returned slice does not affect the customer.
func (c *Customer) Contacts() []string {
	contacts := make([]string, len(c.contacts))
	copy(contacts, c.contacts)
	return contacts
}

// AddContact normalizes the contact and appends it to the end of the list.
// Duplicates are permitted. It returns an InvalidArgumentErr when the
// contact normalizes to the empty string.
func (c *Customer) AddContact(contact string) (*Customer, error) {
	normalized := Normalize(contact)
	if normalized == "" {
		return c, NewInvalidArgumentErr("contact", "contact must not be empty")
	}
	c.contacts = append(c.contacts, normalized)
	return c, nil
}

// DeleteContact removes the contact at the given zero-based position,
// shifting subsequent contacts left. It returns the number of removed
// entries, always 1 on success. An index outside [0, ContactsCount())
// yields an IndexOutOfRangeErr and leaves the list unchanged.
func (c *Customer) DeleteContact(i int) (int, error) {
	if i < 0 || i >= len(c.contacts) {
		return 0, NewIndexOutOfRangeErr(i, len(c.contacts))
	}
	c.contacts = append(c.contacts[:i], c.contacts[i+1:]...)
	return 1, nil
}

// DeleteAllContacts empties the contact list.
func (c *Customer) DeleteAllContacts() {
	c.contacts = nil
}
