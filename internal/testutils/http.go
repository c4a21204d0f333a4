package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite holds a router for handler tests
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin in test mode with the given middleware,
// typically one that places an authenticated actor on the context
func SetupHTTPTest(middleware ...gin.HandlerFunc) *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware...)

	return &HTTPTestSuite{
		Router: router,
	}
}

// Envelope mirrors the JSON body every API endpoint answers with
type Envelope struct {
	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

// MakeRequest executes a JSON request against the router
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders executes a JSON request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBytes, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

// AssertEnvelope checks status code and message and returns the decoded body
func AssertEnvelope(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) Envelope {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.Equal(t, expectedStatus < http.StatusBadRequest, envelope.Status)
	if expectedMessage != "" {
		assert.Equal(t, expectedMessage, envelope.Message)
	}
	return envelope
}

// DecodeData unmarshals the envelope data into target
func DecodeData(t *testing.T, envelope Envelope, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

// HTTPTestCase is one request with its expected envelope
type HTTPTestCase struct {
	Name            string
	Method          string
	URL             string
	Body            interface{}
	Setup           func()
	ExpectedStatus  int
	ExpectedMessage string
	ExpectedFields  []string // keys expected in the errors map
}

// RunHTTPTestCases runs a series of HTTP test cases
func (suite *HTTPTestSuite) RunHTTPTestCases(t *testing.T, testCases []HTTPTestCase) {
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Setup != nil {
				tc.Setup()
			}

			recorder := suite.MakeRequest(tc.Method, tc.URL, tc.Body)
			envelope := AssertEnvelope(t, recorder, tc.ExpectedStatus, tc.ExpectedMessage)

			for _, field := range tc.ExpectedFields {
				assert.Contains(t, envelope.Errors, field)
			}
		})
	}
}
