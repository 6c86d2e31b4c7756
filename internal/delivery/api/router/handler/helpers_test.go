package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"classifieds/internal/delivery/api/validator"
	deliverycontext "classifieds/internal/delivery/context"
	"classifieds/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	method string
	target string
	body   string
	id     string
	user   *entity.User
}

func newTestContext(tr testRequest) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(tr.method, tr.target, strings.NewReader(tr.body))
	if tr.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if tr.id != "" {
		c.SetParamNames("id")
		c.SetParamValues(tr.id)
	}
	if tr.user != nil {
		deliverycontext.SetUser(c, tr.user)
	}

	return c, rec
}

// decodeData unmarshals the data field of a success envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Meta.RequestID)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func strPtr(s string) *string {
	return &s
}
