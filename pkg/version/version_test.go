package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  LibCEC
	}{
		{"6.0", LibCEC{6, 0, 0}},
		{"6.0.2", LibCEC{6, 0, 2}},
		{"4.0.7", LibCEC{4, 0, 7}},
		{"10.23.1", LibCEC{10, 23, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "6", "abc", "6.0.0.1", "6.", ".0", "-1.0", "256.0", "6.x"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestCodeRoundTrip(t *testing.T) {
	v := FromCode(0x060002)
	assert.Equal(t, LibCEC{6, 0, 2}, v)
	assert.Equal(t, uint32(0x060002), v.Code())
	assert.Equal(t, "6.0.2", v.String())
}

func TestClient(t *testing.T) {
	assert.Equal(t, uint8(6), Client.Major)
}

func TestCompatible(t *testing.T) {
	v6, _ := Parse("6.0.2")
	v60, _ := Parse("6.1")
	v4, _ := Parse("4.0.7")

	assert.True(t, v6.Compatible(v60))
	assert.False(t, v6.Compatible(v4))
}
