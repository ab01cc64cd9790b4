package client

import (
	"context"
	"net/http"
)

// CreateOrganization posts a new organization and returns the persisted
// record, including its generated id and timestamps.
func (c *Client) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*Organization, error) {
	var out struct {
		Organization Organization `json:"organization"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/organizations", req, &out); err != nil {
		return nil, err
	}
	return &out.Organization, nil
}

// CreateJob posts a new job and returns the persisted record with its
// display joins resolved.
func (c *Client) CreateJob(ctx context.Context, req CreateJobRequest) (*Job, error) {
	var out struct {
		Job Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/jobs", req, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

func (c *Client) ListOrganizations(ctx context.Context) ([]Organization, error) {
	var out struct {
		Organizations []Organization `json:"organizations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/organizations", nil, &out); err != nil {
		return nil, err
	}
	return out.Organizations, nil
}

func (c *Client) ListAssociates(ctx context.Context) ([]Associate, error) {
	var out struct {
		Associates []Associate `json:"associates"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/associates", nil, &out); err != nil {
		return nil, err
	}
	return out.Associates, nil
}

func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var out struct {
		Customers []Customer `json:"customers"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/customers", nil, &out); err != nil {
		return nil, err
	}
	return out.Customers, nil
}

func (c *Client) ListPeople(ctx context.Context) ([]Person, error) {
	var out struct {
		People []Person `json:"people"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/people", nil, &out); err != nil {
		return nil, err
	}
	return out.People, nil
}

func (c *Client) ListJobs(ctx context.Context) ([]Job, error) {
	var out struct {
		Jobs []Job `json:"jobs"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/jobs", nil, &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}
