package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"visionvault_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignerRegisterLoginFlow(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("designer")

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/designer/register", map[string]string{
		"name":     "Aya Designer",
		"email":    email,
		"password": "password123",
		"phone":    "+77010000000",
		"role":     "designer",
	}, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	env := helpers.ParseEnvelope(t, body)
	assert.True(t, env.Success)

	var created struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, email, created.Email)

	// The projection must not leak credential material.
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "PasswordHash")

	res, body = ts.SendJSON(t, http.MethodPost, "/api/v1/designer/login", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	env = helpers.ParseEnvelope(t, body)
	var login struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.Equal(t, created.ID, login.ID)
	assert.NotEmpty(t, login.Token)

	res, body = ts.SendJSON(t, http.MethodPost, "/api/v1/designer/login", map[string]string{
		"email":    email,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestDesignerRegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("dup")

	fields := map[string]string{
		"name":     "First",
		"email":    email,
		"password": "password123",
		"phone":    "+77010000001",
		"role":     "designer",
	}

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/designer/register", fields, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendMultipart(t, http.MethodPost, "/api/v1/designer/register", fields, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

// Wrong password and unknown account must be indistinguishable.
func TestLoginUniformInvalidCredentials(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("uniform")
	helpers.CreateDesigner(t, ts.DB, "Known", email, "password123")

	res1, body1 := ts.SendJSON(t, http.MethodPost, "/api/v1/designer/login", map[string]string{
		"email":    email,
		"password": "not-the-password",
	})
	res2, body2 := ts.SendJSON(t, http.MethodPost, "/api/v1/designer/login", map[string]string{
		"email":    helpers.UniqueEmail("ghost"),
		"password": "whatever123",
	})

	assert.Equal(t, http.StatusUnauthorized, res1.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode)

	env1 := helpers.ParseEnvelope(t, body1)
	env2 := helpers.ParseEnvelope(t, body2)
	assert.Equal(t, env1.Message, env2.Message)
}

func TestLoginMissingFields(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendJSON(t, http.MethodPost, "/api/v1/designer/login", map[string]string{
		"email": "someone@test.com",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestConsumerRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("consumer")

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/consumer/register", map[string]string{
		"name":     "Bek Consumer",
		"email":    email,
		"password": "password123",
		"phone":    "+77020000000",
		"role":     "consumer",
	}, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendJSON(t, http.MethodPost, "/api/v1/consumer/login", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	env := helpers.ParseEnvelope(t, body)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.Token)
}

func TestRegisterWithProfileImage(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("withimage")

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/designer/register", map[string]string{
		"name":     "Pic Designer",
		"email":    email,
		"password": "password123",
		"phone":    "+77010000002",
		"role":     "designer",
	}, []helpers.FileUpload{{Field: "image", Filename: "avatar.png"}})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	env := helpers.ParseEnvelope(t, body)
	var created struct {
		Image string `json:"image"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.Image)
	assert.NotEqual(t, "avatar.png", created.Image)
}
