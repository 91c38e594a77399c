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

func createPost(t *testing.T, ts *helpers.TestServer, designerID string, pics ...string) contentDoc {
	t.Helper()

	var files []helpers.FileUpload
	for _, name := range pics {
		files = append(files, helpers.FileUpload{Field: "referencePics", Filename: name})
	}

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/post", map[string]string{
		"title":       "Poster series",
		"description": "Three concert posters",
		"type":        "print",
		"createdBy":   designerID,
	}, files)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	env := helpers.ParseEnvelope(t, body)
	var doc contentDoc
	require.NoError(t, json.Unmarshal(env.Data, &doc))
	return doc
}

func TestPostCreate(t *testing.T) {
	ts := GetTestServer(t)
	designer := helpers.CreateDesigner(t, ts.DB, "Post Author", helpers.UniqueEmail("postauthor"), "password123")

	doc := createPost(t, ts, designer.ID, "shot-1.png", "shot-2.png")
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Poster series", doc.Title)
	assert.Len(t, doc.ReferencePics, 2)
	require.NotNil(t, doc.CreatedBy)
	assert.Equal(t, designer.ID, doc.CreatedBy.ID)
}

func TestPostCreateUnknownOwner(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/post", map[string]string{
		"title":       "Orphan post",
		"description": "No author",
		"type":        "print",
		"createdBy":   uuid.NewString(),
	}, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestPostListByDesigner(t *testing.T) {
	ts := GetTestServer(t)
	author := helpers.CreateDesigner(t, ts.DB, "Prolific", helpers.UniqueEmail("prolific"), "password123")
	other := helpers.CreateDesigner(t, ts.DB, "Quiet", helpers.UniqueEmail("quiet"), "password123")
	createPost(t, ts, author.ID)
	createPost(t, ts, author.ID)
	createPost(t, ts, other.ID)

	res, body := ts.SendJSON(t, http.MethodGet, "/api/v1/post/designer/"+author.ID, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	env := helpers.ParseEnvelope(t, body)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	var docs []contentDoc
	require.NoError(t, json.Unmarshal(env.Data, &docs))
	for _, d := range docs {
		require.NotNil(t, d.CreatedBy)
		assert.Equal(t, author.ID, d.CreatedBy.ID)
	}
}

func TestPostUpdateKeepAndAdd(t *testing.T) {
	ts := GetTestServer(t)
	designer := helpers.CreateDesigner(t, ts.DB, "Reviser", helpers.UniqueEmail("reviser"), "password123")
	doc := createPost(t, ts, designer.ID, "keep-me.png", "drop-me.png")

	keep, err := json.Marshal(doc.ReferencePics[:1])
	require.NoError(t, err)

	res, body := ts.SendMultipart(t, http.MethodPut, "/api/v1/post/"+doc.ID, map[string]string{
		"description":    "Revised poster set",
		"existingImages": string(keep),
	}, []helpers.FileUpload{{Field: "newImages", Filename: "extra.png"}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	env := helpers.ParseEnvelope(t, body)
	var updated contentDoc
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Revised poster set", updated.Description)
	assert.Equal(t, doc.Title, updated.Title)
	require.Len(t, updated.ReferencePics, 2)
	assert.Equal(t, doc.ReferencePics[0], updated.ReferencePics[0])
	assert.NotContains(t, updated.ReferencePics, doc.ReferencePics[1])
}

func TestPostDelete(t *testing.T) {
	ts := GetTestServer(t)
	designer := helpers.CreateDesigner(t, ts.DB, "Remover", helpers.UniqueEmail("remover"), "password123")
	doc := createPost(t, ts, designer.ID, "gone.png")

	res, _ := ts.SendJSON(t, http.MethodDelete, "/api/v1/post/"+doc.ID, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendJSON(t, http.MethodGet, "/api/v1/post/"+doc.ID, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
