package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenRepositoriesMemory(t *testing.T) {
	repos, err := openRepositories("memory", "")
	assert.NoError(t, err)
	assert.NotNil(t, repos.users)
	assert.NotNil(t, repos.activities)
	assert.NotNil(t, repos.challenges)
	assert.NotNil(t, repos.follows)
}

func TestOpenRepositoriesUnknownDriver(t *testing.T) {
	_, err := openRepositories("cassandra", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}

func TestHealthEndpoint(t *testing.T) {
	repos, err := openRepositories("memory", "")
	assert.NoError(t, err)
	app := newApp(repos, "test_jwt_secret", nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
}
