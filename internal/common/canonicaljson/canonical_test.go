package canonicaljson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_SortsKeys(t *testing.T) {
	in := map[string]interface{}{
		"zulu":  1,
		"alpha": "x",
		"mike": map[string]interface{}{
			"b": true,
			"a": nil,
		},
	}

	out, err := Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":"x","mike":{"a":null,"b":true},"zulu":1}`, string(out))
}

func TestMarshal_PreservesArrayOrder(t *testing.T) {
	out, err := Marshal(map[string]interface{}{"list": []int{3, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, `{"list":[3,1,2]}`, string(out))
}

func TestMarshal_NoHTMLEscaping(t *testing.T) {
	out, err := Marshal(map[string]string{"url": "a<b>&c"})
	require.NoError(t, err)
	assert.Equal(t, `{"url":"a<b>&c"}`, string(out))
}

func TestMarshal_Deterministic(t *testing.T) {
	type payload struct {
		B string `json:"b"`
		A int    `json:"a"`
	}

	first, err := Marshal(payload{B: "x", A: 7})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Marshal(payload{B: "x", A: 7})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestHash_StableForEquivalentInputs(t *testing.T) {
	h1, err := Hash(map[string]int{"a": 1, "b": 2})
	require.NoError(t, err)

	h2, err := Hash(map[string]int{"b": 2, "a": 1})
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}
