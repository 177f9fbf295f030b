package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	m := map[string]interface{}{
		"str": "foo",
		"num": 1,
		"obj": map[string]interface{}{
			"bool":  false,
			"array": []string{"toto", "tutu", "tata"},
		},
	}
	str := Get(m, "str")
	assert.Equal(t, "foo", str)

	bool := Get(m, "obj.bool")
	assert.Equal(t, false, bool)

	null := Get(m, "obj.bool.null")
	assert.Nil(t, null)

	assert.Nil(t, Get(nil, "str"))
}

func TestDecode(t *testing.T) {
	var out struct {
		URI      string `mapstructure:"uri"`
		Interval int    `mapstructure:"refresh_interval_ms"`
	}
	err := Decode(map[string]interface{}{"uri": "http://ci", "refresh_interval_ms": 500}, &out)
	require.NoError(t, err)
	assert.Equal(t, "http://ci", out.URI)
	assert.Equal(t, 500, out.Interval)
}
