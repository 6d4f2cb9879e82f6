package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/ventas-pos/docs"
)

func TestSwaggerRegistrado(t *testing.T) {
	docs.SwaggerInfo.Host = "localhost:8080"
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Host  string                    `json:"host"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "localhost:8080", doc.Host)
	assert.Contains(t, doc.Paths, "/api/carts/{id}/submit")
	assert.Contains(t, doc.Paths["/api/carts/{id}/submit"], "post")
}
