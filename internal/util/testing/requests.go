package testing_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type Response struct {
	Code int
	Body []byte
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	expectedStatus int,
) *Response {
	return makeRequest(t, router, "GET", url, authToken, nil, expectedStatus)
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	expectedStatus int,
	response any,
) {
	resp := MakeGetRequest(t, router, url, authToken, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, response))
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	body any,
	expectedStatus int,
) *Response {
	return makeRequest(t, router, "POST", url, authToken, body, expectedStatus)
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	body any,
	expectedStatus int,
	response any,
) {
	resp := MakePostRequest(t, router, url, authToken, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, response))
}

func MakePatchRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	body any,
	expectedStatus int,
) *Response {
	return makeRequest(t, router, "PATCH", url, authToken, body, expectedStatus)
}

func MakePatchRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	body any,
	expectedStatus int,
	response any,
) {
	resp := MakePatchRequest(t, router, url, authToken, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, response))
}

// MakeRawPostRequest sends the body bytes as-is, for malformed payload tests.
func MakeRawPostRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	rawBody []byte,
	expectedStatus int,
) *Response {
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(rawBody))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	return &Response{Code: w.Code, Body: w.Body.Bytes()}
}

func makeRequest(
	t *testing.T,
	router *gin.Engine,
	method string,
	url string,
	authToken string,
	body any,
	expectedStatus int,
) *Response {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		require.NoError(t, err)
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	return &Response{Code: w.Code, Body: w.Body.Bytes()}
}
