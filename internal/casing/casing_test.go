package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"UserProfile", "user_profile"},
		{"XMLParser", "xml_parser"},
		{"HTTP2Server", "http2_server"},
		{"Q", "q"},
		{"ID", "id"},
		{"OrderID", "order_id"},
		{"getHTTPResponse", "get_http_response"},
		{"already_snake", "already_snake"},
		{"Mixed_Case", "mixed_case"},
		{"_Private", "_private"},
		{"r#Type", "r#type"},
		{"Vec3", "vec3"},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ToSnake(tt.input))
		})
	}
}

func TestToFieldName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user_profile", ToFieldName("UserProfile"))
	assert.Equal(t, "r#type", ToFieldName("Type"))
	assert.Equal(t, "r#match", ToFieldName("Match"))
	assert.Equal(t, "r#type", ToFieldName("r#Type"))
	assert.Equal(t, "types", ToFieldName("Types"))
}

func TestWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Order", "ID"}, Words("OrderID"))
	assert.Equal(t, []string{"customer", "Name"}, Words("customerName"))
	assert.Equal(t, []string{"get", "HTTP", "Response"}, Words("getHTTPResponse"))
	assert.Equal(t, []string{"order", "item"}, Words("order__item"))
	assert.Nil(t, Words(""))
}

func TestToSnake_Idempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"UserProfile", "XMLParser", "HTTP2Server", "a_b_c"} {
		once := ToSnake(input)
		assert.Equal(t, once, ToSnake(once), input)
	}
}
