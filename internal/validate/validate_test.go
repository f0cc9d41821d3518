package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ultrapopular/internal/validate"
)

func TestID(t *testing.T) {
	id, ok := validate.ID("  pampers-1 ")
	assert.True(t, ok)
	assert.Equal(t, "pampers-1", id)

	for _, bad := range []string{"", "   ", "a b", "<script>", "x'--"} {
		_, ok := validate.ID(bad)
		assert.False(t, ok, bad)
	}
}

func TestCity(t *testing.T) {
	for _, good := range []string{"", "Belford Roxo", "São João de Meriti", "Duque de Caxias"} {
		_, ok := validate.City(good)
		assert.True(t, ok, good)
	}
	for _, bad := range []string{"Rio; DROP TABLE", "<b>", "12345"} {
		_, ok := validate.City(bad)
		assert.False(t, ok, bad)
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, "ação", validate.Clip("ação", 4))
	assert.Equal(t, "aç", validate.Clip("ação", 2))
	assert.Equal(t, "abc", validate.Clip("abc", 0))
}

type qtyBody struct {
	Quantity *int   `json:"quantity" validate:"required,max=999"`
	Note     string `json:"note" validate:"max=5"`
}

func TestDecodeJSON(t *testing.T) {
	var b qtyBody
	require.NoError(t, validate.DecodeJSON([]byte(`{"quantity":0}`), &b))
	require.NotNil(t, b.Quantity)
	assert.Equal(t, 0, *b.Quantity)

	cases := map[string]string{
		`{"quantity":1,"extra":true}`: "invalid request body",
		`{"quantity":"1"}`:            "invalid request body",
		`{"quantity":1}{}`:            "invalid request body",
		`not json`:                    "invalid request body",
		`{}`:                          "validation failed: quantity is required",
		`{"quantity":1000}`:           "validation failed: quantity must be at most 999",
		`{"quantity":1,"note":"long note"}`: "validation failed: note must be at most 5",
	}
	for body, want := range cases {
		var got qtyBody
		err := validate.DecodeJSON([]byte(body), &got)
		require.Error(t, err, body)
		var be *validate.BodyError
		require.True(t, errors.As(err, &be))
		assert.Equal(t, want, err.Error(), body)
	}
}
