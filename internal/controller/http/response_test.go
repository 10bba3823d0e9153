package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(logger.New()))
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRespond_SuccessEnvelope(t *testing.T) {
	router := setupTestRouter()
	router.GET("/ok", func(c *gin.Context) {
		respond(c, http.StatusOK, gin.H{"value": 1}, "all good")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ok", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(200), body["statusCode"])
	assert.Equal(t, "all good", body["message"])
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["data"])
}

func TestErrorHandler_TranslatesUseCaseError(t *testing.T) {
	router := setupTestRouter()
	router.GET("/bad", func(c *gin.Context) {
		fail(c, usecase.BadRequest("boom"))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bad", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(400), body["statusCode"])
	assert.Equal(t, "boom", body["message"])
	assert.Equal(t, false, body["success"])
	assert.Equal(t, []interface{}{}, body["errors"])
}

func TestErrorHandler_UnknownErrorDefaultsTo500(t *testing.T) {
	router := setupTestRouter()
	router.GET("/explode", func(c *gin.Context) {
		fail(c, errors.New("connection reset"))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/explode", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Internal Server Error", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestObjectIDParam_RejectsMalformedID(t *testing.T) {
	router := setupTestRouter()
	router.GET("/items/:videoId", func(c *gin.Context) {
		if _, ok := objectIDParam(c, "videoId"); !ok {
			return
		}
		respond(c, http.StatusOK, nil, "reached")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/items/not-an-id", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Invalid videoId", body["message"])
}

func TestObjectIDParam_AcceptsValidID(t *testing.T) {
	router := setupTestRouter()
	router.GET("/items/:videoId", func(c *gin.Context) {
		id, ok := objectIDParam(c, "videoId")
		if !ok {
			return
		}
		respond(c, http.StatusOK, gin.H{"id": id}, "reached")
	})

	id := primitive.NewObjectID().Hex()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/items/"+id, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
