package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONGet(t *testing.T) {
	body := JSON{
		"id":      "80351110224678912",
		"code":    float64(10013),
		"pinned":  true,
		"author":  map[string]any{"id": "1", "username": "Nelly"},
		"embeds":  []any{map[string]any{"title": "stats"}},
		"missing": nil,
	}

	id, err := body.GetString("id")
	require.NoError(t, err)
	require.Equal(t, "80351110224678912", id)

	code, err := body.GetInt("code")
	require.NoError(t, err)
	require.Equal(t, 10013, code)

	pinned, err := body.GetBool("pinned")
	require.NoError(t, err)
	require.True(t, pinned)

	username, err := body.GetString("author.username")
	require.NoError(t, err)
	require.Equal(t, "Nelly", username)

	embeds, err := body.GetArray("embeds")
	require.NoError(t, err)
	require.Len(t, embeds, 1)

	_, err = body.GetString("nope")
	require.Error(t, err)

	_, err = body.GetInt("id")
	require.Error(t, err)
}

func TestParameterEncode(t *testing.T) {
	p := Parameter{"with_counts": "true", "q": "a b"}
	require.Equal(t, "q=a%20b&with_counts=true", p.Encode())
}

func TestBytesToBody(t *testing.T) {
	obj, err := bytesToJSON([]byte(`{"id":"1"}`))
	require.NoError(t, err)
	require.Equal(t, JSON{"id": "1"}, obj)

	array, err := bytesToArray([]byte(`[{"id":"1"},{"id":"2"}]`))
	require.NoError(t, err)
	require.Len(t, array, 2)
	require.Equal(t, JSON{"id": "2"}, array[1])

	_, err = bytesToJSON([]byte(`[1,2]`))
	require.Error(t, err)
}
