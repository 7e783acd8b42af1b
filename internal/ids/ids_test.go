package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_Sequence(t *testing.T) {
	c := NewCounter("exp")
	assert.Equal(t, "exp-1", c.Next())
	assert.Equal(t, "exp-2", c.Next())
	assert.Equal(t, "exp-3", c.Next())
}

func TestCounter_DefaultPrefix(t *testing.T) {
	c := NewCounter("")
	assert.Equal(t, "item-1", c.Next())
}

func TestUUID_Next(t *testing.T) {
	g := UUID{}
	a := g.Next()
	b := g.Next()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		wantErr  bool
	}{
		{name: "default", strategy: ""},
		{name: "uuid", strategy: "uuid"},
		{name: "counter", strategy: "counter"},
		{name: "unknown", strategy: "timestamp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.strategy)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, g.Next())
		})
	}
}
