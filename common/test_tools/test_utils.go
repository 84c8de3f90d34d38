package testtools

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// GenerateCtxWithJSONAndParams builds a gin test context carrying the given
// JSON body and path params.
func GenerateCtxWithJSONAndParams(t *testing.T, data map[string]interface{}, params []gin.Param) *gin.Context {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Params = params
	ctx.Request = httptest.NewRequest("POST", "http://localhost:8080", nil)

	jsonbytes, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	ctx.Request.Body = io.NopCloser(bytes.NewReader(jsonbytes))

	return ctx
}

// GenerateAuthenticatedCtx builds a gin test context with a JSON body and the
// identity keys that the auth middleware would have set.
func GenerateAuthenticatedCtx(t *testing.T, data map[string]interface{}, customerID, email string) *gin.Context {
	ctx := GenerateCtxWithJSONAndParams(t, data, nil)
	ctx.Set("customerId", customerID)
	ctx.Set("email", email)

	return ctx
}
