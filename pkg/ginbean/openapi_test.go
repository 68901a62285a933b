package ginbean_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakamurakj/bean-validation/pkg/ginbean"
)

func TestSchemaHandler(t *testing.T) {
	api := ginbean.New("Members", "1.0.0", ginbean.WithAPIDescription("member registration"))
	r := gin.New()
	r.POST("/members", ginbean.Body[CreateMemberRequest](api, "POST", "/members",
		ginbean.WithSummary("Register a member"), ginbean.WithTags("members")))
	r.GET("/openapi.json", api.SchemaHandler())

	w := do(r, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.1.0", doc["openapi"])
	info := doc["info"].(map[string]any)
	assert.Equal(t, "Members", info["title"])
	assert.Equal(t, "member registration", info["description"])

	post := doc["paths"].(map[string]any)["/members"].(map[string]any)["post"].(map[string]any)
	assert.Equal(t, "Register a member", post["summary"])
	assert.Equal(t, []any{"members"}, post["tags"])

	responses := post["responses"].(map[string]any)
	assert.Contains(t, responses, "422")
	assert.Contains(t, responses, "400")

	body := post["requestBody"].(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)["schema"].(map[string]any)
	zip := body["properties"].(map[string]any)["zipCode"].(map[string]any)
	assert.Equal(t, "^(?:[0-9]{3}-[0-9]{4})$", zip["pattern"])
	code := body["properties"].(map[string]any)["code"].(map[string]any)
	assert.EqualValues(t, 18, code["maxLength"])
}

func TestGenerateOpenAPI_PathParameters(t *testing.T) {
	api := ginbean.New("Members", "1.0.0")
	api.Endpoint("GET", "/members/:id")

	doc, err := api.GenerateOpenAPI()
	require.NoError(t, err)
	get := doc["paths"].(map[string]any)["/members/{id}"].(map[string]any)["get"].(map[string]any)
	params := get["parameters"].([]any)
	require.Len(t, params, 1)
	assert.Equal(t, "id", params[0].(map[string]any)["name"])
	assert.NotContains(t, get, "requestBody")

	data, err := api.MarshalOpenAPI()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"/members/{id}"`)
}

func TestConvertGinPathToOpenAPI(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/members", "/members"},
		{"/members/:id", "/members/{id}"},
		{"/members/:id/orders/:orderId", "/members/{id}/orders/{orderId}"},
		{"/files/*path", "/files/{path}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ginbean.ConvertGinPathToOpenAPI(tt.in))
	}
}

func TestExtractPathParameters(t *testing.T) {
	assert.Equal(t, []string{"id", "orderId"}, ginbean.ExtractPathParameters("/members/{id}/orders/{orderId}"))
	assert.Nil(t, ginbean.ExtractPathParameters("/members"))
}
