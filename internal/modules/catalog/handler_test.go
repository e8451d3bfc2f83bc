package catalog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewHandler(setupTestService(t)).RegisterRoutes(r.Group(""))
	return r
}

func doJSONRequest(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp testResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body=%s", rr.Body.String())
	return rr, resp
}

func TestPlanetEndpoints(t *testing.T) {
	r := setupTestRouter(t)

	rr, resp := doJSONRequest(t, r, http.MethodGet, "/all_planets", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, string(resp.Data))

	rr, resp = doJSONRequest(t, r, http.MethodPost, "/new_planet", map[string]any{
		"name": "Tatooine", "population": "200000", "diameter": "10465",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.True(t, resp.Success)
	assert.JSONEq(t, `{"id":1,"name":"Tatooine","population":"200000","diameter":"10465"}`, string(resp.Data))

	rr, resp = doJSONRequest(t, r, http.MethodPost, "/new_planet", map[string]any{
		"name": "Tatooine", "population": "1", "diameter": "1",
	})
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "CONFLICT", resp.Error.Code)

	rr, resp = doJSONRequest(t, r, http.MethodGet, "/planet/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"Tatooine","population":"200000","diameter":"10465"}`, string(resp.Data))

	rr, resp = doJSONRequest(t, r, http.MethodGet, "/all_planets", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Tatooine","population":"200000","diameter":"10465"}]`, string(resp.Data))
}

func TestGetMissingIsNotFound(t *testing.T) {
	r := setupTestRouter(t)

	for _, path := range []string{"/character/5", "/planet/5", "/vehicle/5", "/user/5"} {
		rr, resp := doJSONRequest(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	}
}

func TestGetInvalidID(t *testing.T) {
	r := setupTestRouter(t)

	rr, resp := doJSONRequest(t, r, http.MethodGet, "/vehicle/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
}

func TestCreateValidationError(t *testing.T) {
	r := setupTestRouter(t)

	rr, resp := doJSONRequest(t, r, http.MethodPost, "/new_character", map[string]any{
		"name": "Luke", "gender": "   ", "eye_color": "blue",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "gender", resp.Error.Details["field"])
}

func TestCreateMalformedBody(t *testing.T) {
	r := setupTestRouter(t)

	for _, body := range []string{"{", "[]", "null"} {
		rr, resp := doJSONRequest(t, r, http.MethodPost, "/new_vehicle", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, "INVALID_REQUEST", resp.Error.Code, body)
	}
}

func TestUserEndpointsNeverExposePassword(t *testing.T) {
	r := setupTestRouter(t)

	rr, resp := doJSONRequest(t, r, http.MethodPost, "/new_user", map[string]any{
		"name":                "Luke",
		"last_name":           "Skywalker",
		"email":               "luke@rebellion.org",
		"password":            "use-the-force",
		"date_of_suscription": "1977-05-25",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "password")
	assert.JSONEq(t, `{
		"id": 1,
		"email": "luke@rebellion.org",
		"name": "Luke",
		"last_name": "Skywalker",
		"is_active": true,
		"date_of_suscription": "1977-05-25"
	}`, string(resp.Data))

	rr, _ = doJSONRequest(t, r, http.MethodGet, "/all_users", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "use-the-force")
	assert.NotContains(t, rr.Body.String(), "password")

	rr, resp = doJSONRequest(t, r, http.MethodPost, "/new_user", map[string]any{
		"name":      "Luke",
		"last_name": "Skywalker",
		"email":     "luke@rebellion.org",
		"password":  "again",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
}
