package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"visionvault_backend/internal/models"
	"visionvault_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForResetToken polls the mock mailer for the reset email sent to
// the given address and extracts the raw token from the link.
func waitForResetToken(t *testing.T, ts *helpers.TestServer, email string) string {
	t.Helper()

	var token string
	require.Eventually(t, func() bool {
		for _, msg := range ts.Mailer.Sent() {
			if len(msg.To) > 0 && msg.To[0] == email {
				idx := strings.LastIndex(msg.Body, "/")
				if idx < 0 {
					return false
				}
				token = msg.Body[idx+1:]
				return token != ""
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond, "reset email never arrived")

	return token
}

func TestDesignerPasswordResetFlow(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("reset")
	helpers.CreateDesigner(t, ts.DB, "Reset Me", email, "oldpassword")

	res, body := ts.SendJSON(t, http.MethodPost, "/api/v1/designer/forgotpassword", map[string]string{
		"email": email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	token := waitForResetToken(t, ts, email)

	// The raw token must not be what the database stores.
	var stored models.Designer
	require.NoError(t, ts.DB.First(&stored, "email = ?", email).Error)
	assert.NotEmpty(t, stored.ResetTokenHash)
	assert.NotEqual(t, token, stored.ResetTokenHash)
	require.NotNil(t, stored.ResetTokenExp)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), *stored.ResetTokenExp, time.Minute)

	res, body = ts.SendJSON(t, http.MethodGet, "/api/v1/designer/resetpassword/"+token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	env := helpers.ParseEnvelope(t, body)
	var verified struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &verified))
	assert.Equal(t, email, verified.Email)

	res, body = ts.SendJSON(t, http.MethodPost, "/api/v1/designer/resetpassword/"+token, map[string]string{
		"password": "newpassword",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// New password works, old one does not.
	res, _ = ts.SendJSON(t, http.MethodPost, "/api/v1/designer/login", map[string]string{
		"email":    email,
		"password": "newpassword",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendJSON(t, http.MethodPost, "/api/v1/designer/login", map[string]string{
		"email":    email,
		"password": "oldpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestResetTokenSingleUse(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("singleuse")
	helpers.CreateDesigner(t, ts.DB, "Single Use", email, "oldpassword")

	res, _ := ts.SendJSON(t, http.MethodPost, "/api/v1/designer/forgotpassword", map[string]string{
		"email": email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	token := waitForResetToken(t, ts, email)

	res, _ = ts.SendJSON(t, http.MethodPost, "/api/v1/designer/resetpassword/"+token, map[string]string{
		"password": "firstnewpass",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// The consumed token must be rejected everywhere.
	res, _ = ts.SendJSON(t, http.MethodPost, "/api/v1/designer/resetpassword/"+token, map[string]string{
		"password": "secondnewpass",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendJSON(t, http.MethodGet, "/api/v1/designer/resetpassword/"+token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestResetTokenExpiry(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("expired")
	helpers.CreateDesigner(t, ts.DB, "Expired", email, "oldpassword")

	res, _ := ts.SendJSON(t, http.MethodPost, "/api/v1/designer/forgotpassword", map[string]string{
		"email": email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	token := waitForResetToken(t, ts, email)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, ts.DB.Model(&models.Designer{}).
		Where("email = ?", email).
		Update("reset_token_exp", expired).Error)

	res, _ = ts.SendJSON(t, http.MethodGet, "/api/v1/designer/resetpassword/"+token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendJSON(t, http.MethodPost, "/api/v1/designer/resetpassword/"+token, map[string]string{
		"password": "newpassword",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendJSON(t, http.MethodPost, "/api/v1/designer/forgotpassword", map[string]string{
		"email": helpers.UniqueEmail("nobody"),
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestConsumerPasswordReset(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("consumerreset")
	helpers.CreateConsumer(t, ts.DB, "Consumer Reset", email, "oldpassword")

	res, _ := ts.SendJSON(t, http.MethodPost, "/api/v1/consumer/forgotpassword", map[string]string{
		"email": email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	token := waitForResetToken(t, ts, email)

	res, _ = ts.SendJSON(t, http.MethodPost, "/api/v1/consumer/resetpassword/"+token, map[string]string{
		"password": "brandnewpass",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendJSON(t, http.MethodPost, "/api/v1/consumer/login", map[string]string{
		"email":    email,
		"password": "brandnewpass",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
