package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Number
		wantErr bool
	}{
		{name: "int", in: `10`, want: N(10)},
		{name: "float", in: `12.5`, want: N(12.5)},
		{name: "numeric string", in: `"7"`, want: N(7)},
		{name: "padded string", in: `" 3.25 "`, want: N(3.25)},
		{name: "zero", in: `0`, want: N(0)},
		{name: "null", in: `null`, want: Number{}},
		{name: "empty string", in: `""`, want: Number{}},
		{name: "word", in: `"ten"`, wantErr: true},
		{name: "object", in: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var n Number
			err := json.Unmarshal([]byte(tt.in), &n)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestNumber_AbsentField(t *testing.T) {
	t.Parallel()

	var req ProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Gel","stock":"5"}`), &req))
	assert.Equal(t, 5, req.Stock.Int())
	assert.False(t, req.CostPrice.Set)
	assert.Equal(t, 0.0, req.CostPrice.Or(0))
}

func TestNumber_ID(t *testing.T) {
	t.Parallel()

	id, ok := N(4).ID()
	assert.True(t, ok)
	assert.EqualValues(t, 4, id)

	for _, n := range []Number{{}, N(0), N(-1), N(1.5)} {
		_, ok := n.ID()
		assert.False(t, ok, "%+v", n)
	}
}

func TestNumber_Count(t *testing.T) {
	t.Parallel()

	n, ok := N(3).Count()
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	for _, v := range []Number{{}, N(0), N(-1), N(2.5), N(0.5), N(1e12)} {
		_, ok := v.Count()
		assert.False(t, ok, "%+v", v)
	}
}
