package goConsole

import (
	"context"
	"fmt"
	"net/url"
)

// Location is a customer site record.
//
// Location instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Location struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// Customer defines a public type used by goConsole APIs.
//
// Customer instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Customer struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Enabled   bool       `json:"enabled"`
	Locations []Location `json:"locations,omitempty"`
}

// ListCustomers fetches customers with their locations. With includeAll set,
// disabled customers are included; otherwise the backend returns only the
// enabled ones.
//
// ListCustomers may return an error when input validation, dependency calls, or security checks fail.
// ListCustomers does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) ListCustomers(ctx context.Context, includeAll bool) ([]Customer, error) {
	if c == nil {
		return nil, ErrConsoleNotReady
	}

	var query url.Values
	if includeAll {
		query = url.Values{}
		query.Set("all", "true")
	}

	var customers []Customer
	if err := c.client.GetJSON(ctx, "/clients_with_locations/", query, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// ListClients fetches the flat customer list without location detail. The
// report query screen uses it to populate its customer filter.
//
// ListClients may return an error when input validation, dependency calls, or security checks fail.
// ListClients does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) ListClients(ctx context.Context) ([]Customer, error) {
	if c == nil {
		return nil, ErrConsoleNotReady
	}

	var customers []Customer
	if err := c.client.GetJSON(ctx, "/clients/", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// CustomerInput carries the writable customer fields.
//
// CustomerInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CustomerInput struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// CreateCustomer describes the createcustomer operation and its observable behavior.
//
// CreateCustomer may return an error when input validation, dependency calls, or security checks fail.
// CreateCustomer does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) CreateCustomer(ctx context.Context, input CustomerInput) error {
	if c == nil {
		return ErrConsoleNotReady
	}

	return c.client.PostJSON(ctx, "/clients/", input, nil)
}

// UpdateCustomer describes the updatecustomer operation and its observable behavior.
//
// UpdateCustomer may return an error when input validation, dependency calls, or security checks fail.
// UpdateCustomer does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) UpdateCustomer(ctx context.Context, customerID int, input CustomerInput) error {
	if c == nil {
		return ErrConsoleNotReady
	}

	return c.client.PutJSON(ctx, fmt.Sprintf("/clients/%d", customerID), input, nil)
}

// SetCustomerStatus enables or disables a customer.
//
// SetCustomerStatus may return an error when input validation, dependency calls, or security checks fail.
// SetCustomerStatus does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) SetCustomerStatus(ctx context.Context, customerID int, enabled bool) error {
	if c == nil {
		return ErrConsoleNotReady
	}

	body := map[string]bool{"enabled": enabled}
	return c.client.PutJSON(ctx, fmt.Sprintf("/clients/%d", customerID), body, nil)
}

type locationInput struct {
	Address    string `json:"address"`
	CustomerID int    `json:"client_id"`
}

// AddLocation attaches a new site address to a customer and returns the
// created record.
//
// AddLocation may return an error when input validation, dependency calls, or security checks fail.
// AddLocation does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) AddLocation(ctx context.Context, customerID int, address string) (Location, error) {
	if c == nil {
		return Location{}, ErrConsoleNotReady
	}

	var created Location
	body := locationInput{Address: address, CustomerID: customerID}
	if err := c.client.PostJSON(ctx, "/locations/", body, &created); err != nil {
		return Location{}, err
	}
	return created, nil
}

// UpdateLocation rewrites the address of an existing customer site.
//
// UpdateLocation may return an error when input validation, dependency calls, or security checks fail.
// UpdateLocation does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) UpdateLocation(ctx context.Context, locationID, customerID int, address string) error {
	if c == nil {
		return ErrConsoleNotReady
	}

	body := locationInput{Address: address, CustomerID: customerID}
	return c.client.PutJSON(ctx, fmt.Sprintf("/locations/%d", locationID), body, nil)
}

// DeleteLocation removes a customer site.
//
// DeleteLocation may return an error when input validation, dependency calls, or security checks fail.
// DeleteLocation does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) DeleteLocation(ctx context.Context, locationID int) error {
	if c == nil {
		return ErrConsoleNotReady
	}

	return c.client.Delete(ctx, fmt.Sprintf("/locations/%d", locationID))
}
