package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrganization_EchoesPersistedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/organizations", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req CreateOrganizationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"organization": Organization{
					ID:             "generated-id",
					Name:           req.Name,
					Classification: req.Classification,
					City:           req.City,
				},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, "tok")

	org, err := c.CreateOrganization(context.Background(), CreateOrganizationRequest{
		Name:           "Acme",
		Classification: "associate",
		City:           "Springfield",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, org.ID)
	assert.Equal(t, "Acme", org.Name)
	assert.Equal(t, "associate", org.Classification)
	assert.Equal(t, "Springfield", org.City)
}

func TestCreateOrganization_SurfacesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"INVALID_REQUEST","message":"name required"}}`))
	}))
	defer server.Close()

	c := New(server.URL, "tok")

	_, err := c.CreateOrganization(context.Background(), CreateOrganizationRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "name required", apiErr.Message)
	assert.Equal(t, "name required", err.Error())
}

func TestCreateJob_UnparseableErrorBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	c := New(server.URL, "tok")

	_, err := c.CreateJob(context.Background(), CreateJobRequest{Title: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
}

func TestListJobs_DecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/jobs", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"jobs":[{"id":"j1","title":"Rooftop","status":"New","priority":"Medium","customer_name":"","organization_name":"","assigned_person_name":"","tags":[],"assigned_techs":[]}]}}`))
	}))
	defer server.Close()

	c := New(server.URL, "tok")

	jobs, err := c.ListJobs(context.Background())
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, "j1", jobs[0].ID)
	assert.Equal(t, "", jobs[0].CustomerName)
	assert.NotNil(t, jobs[0].Tags)
}
