package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"visionvault_backend/test/helpers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignerList(t *testing.T) {
	ts := GetTestServer(t)
	helpers.CreateDesigner(t, ts.DB, "Listed One", helpers.UniqueEmail("list1"), "password123")
	helpers.CreateDesigner(t, ts.DB, "Listed Two", helpers.UniqueEmail("list2"), "password123")

	res, body := ts.SendJSON(t, http.MethodGet, "/api/v1/designer", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	env := helpers.ParseEnvelope(t, body)
	require.NotNil(t, env.Count)
	assert.GreaterOrEqual(t, *env.Count, 2)

	var designers []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &designers))
	assert.Len(t, designers, *env.Count)
	for _, d := range designers {
		assert.NotContains(t, d, "password")
		assert.NotContains(t, d, "passwordHash")
	}
}

func TestDesignerProfileNotFound(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendJSON(t, http.MethodGet, "/api/v1/designer/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDesignerUpdateProfilePartial(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("update")
	designer := helpers.CreateDesigner(t, ts.DB, "Before Update", email, "password123")
	require.NoError(t, ts.DB.Model(designer).
		Updates(map[string]interface{}{"experience": "5 years", "portfolio": "https://folio.test"}).Error)

	// Only name is sent: experience and portfolio stay untouched.
	res, body := ts.SendMultipart(t, http.MethodPut, "/api/v1/designer/"+designer.ID, map[string]string{
		"name": "After Update",
	}, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	env := helpers.ParseEnvelope(t, body)
	var updated struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Experience string `json:"experience"`
		Portfolio  string `json:"portfolio"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "After Update", updated.Name)
	assert.Equal(t, email, updated.Email)
	assert.Equal(t, "5 years", updated.Experience)
	assert.Equal(t, "https://folio.test", updated.Portfolio)

	// An explicitly empty field clears the stored value.
	res, body = ts.SendMultipart(t, http.MethodPut, "/api/v1/designer/"+designer.ID, map[string]string{
		"experience": "",
	}, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	env = helpers.ParseEnvelope(t, body)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "After Update", updated.Name)
	assert.Empty(t, updated.Experience)
	assert.Equal(t, "https://folio.test", updated.Portfolio)
}

func TestDesignerUpdateProfileImage(t *testing.T) {
	ts := GetTestServer(t)
	designer := helpers.CreateDesigner(t, ts.DB, "Image Update", helpers.UniqueEmail("imgupd"), "password123")

	res, body := ts.SendMultipart(t, http.MethodPut, "/api/v1/designer/"+designer.ID, nil,
		[]helpers.FileUpload{{Field: "image", Filename: "new-avatar.png"}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	env := helpers.ParseEnvelope(t, body)
	var updated struct {
		Image string `json:"image"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.NotEmpty(t, updated.Image)
}

func TestConsumerUpdateProfile(t *testing.T) {
	ts := GetTestServer(t)
	consumer := helpers.CreateConsumer(t, ts.DB, "Consumer Before", helpers.UniqueEmail("consupd"), "password123")

	res, body := ts.SendMultipart(t, http.MethodPut, "/api/v1/consumer/"+consumer.ID, map[string]string{
		"name":  "Consumer After",
		"phone": "+77029999999",
	}, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	env := helpers.ParseEnvelope(t, body)
	var updated struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Consumer After", updated.Name)
	assert.Equal(t, "+77029999999", updated.Phone)
	assert.Equal(t, consumer.Email, updated.Email)
}

func TestConsumerProfileNotFound(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendJSON(t, http.MethodGet, "/api/v1/consumer/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
