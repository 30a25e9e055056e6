package cpf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPF_JSON(t *testing.T) {
	t.Run("marshals as formatted string", func(t *testing.T) {
		data, err := json.Marshal(MustParse("10000098744"))
		require.NoError(t, err)
		assert.Equal(t, `"100.000.987-44"`, string(data))
	})

	t.Run("zero marshals as null", func(t *testing.T) {
		data, err := json.Marshal(CPF{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("unmarshals any accepted form", func(t *testing.T) {
		var c CPF
		require.NoError(t, json.Unmarshal([]byte(`"10000098744"`), &c))
		assert.True(t, c.Equal(MustParse("100.000.987-44")))
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		var c CPF
		err := json.Unmarshal([]byte(`"not-a-cpf"`), &c)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("rejects non-string JSON", func(t *testing.T) {
		var c CPF
		assert.Error(t, json.Unmarshal([]byte(`12345678910`), &c))
	})

	t.Run("struct field round trip", func(t *testing.T) {
		type person struct {
			Name       string `json:"name"`
			TaxpayerID CPF    `json:"taxpayer_id"`
		}
		in := person{Name: "Ana", TaxpayerID: MustParse("280.012.389-38")}
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out person
		require.NoError(t, json.Unmarshal(data, &out))
		assert.True(t, in.TaxpayerID.Equal(out.TaxpayerID))
	})
}

func TestCPF_Text(t *testing.T) {
	c := MustParse("28001238938")

	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "280.012.389-38", string(text))

	var decoded CPF
	require.NoError(t, decoded.UnmarshalText(text))
	assert.True(t, c.Equal(decoded))

	var zero CPF
	require.NoError(t, zero.UnmarshalText(nil))
	assert.True(t, zero.IsZero())
}

func TestCPF_Scan(t *testing.T) {
	t.Run("from string", func(t *testing.T) {
		var c CPF
		require.NoError(t, c.Scan("10000098744"))
		assert.Equal(t, "10000098744", c.DigitsOnly())
	})

	t.Run("from bytes", func(t *testing.T) {
		var c CPF
		require.NoError(t, c.Scan([]byte("280.012.389-38")))
		assert.Equal(t, "28001238938", c.DigitsOnly())
	})

	t.Run("nil yields zero", func(t *testing.T) {
		c := MustParse("10000098744")
		require.NoError(t, c.Scan(nil))
		assert.True(t, c.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var c CPF
		assert.Error(t, c.Scan(42))
	})
}

func TestCPF_Value(t *testing.T) {
	v, err := MustParse("100.000.987-44").Value()
	require.NoError(t, err)
	assert.Equal(t, "10000098744", v)

	v, err = CPF{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
