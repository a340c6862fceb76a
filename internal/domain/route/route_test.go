package route

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointUnmarshal_StringShape(t *testing.T) {
	var e Endpoint
	require.NoError(t, json.Unmarshal([]byte(`"  12 Jalan Ampang, KL  "`), &e))
	assert.Equal(t, "12 Jalan Ampang, KL", e.Address)
}

func TestEndpointUnmarshal_ObjectShape(t *testing.T) {
	var e Endpoint
	require.NoError(t, json.Unmarshal([]byte(`{"address": " KLCC "}`), &e))
	assert.Equal(t, "KLCC", e.Address)
}

func TestEndpointUnmarshal_RejectsOtherShapes(t *testing.T) {
	var e Endpoint
	err := json.Unmarshal([]byte(`42`), &e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "string or an object")
}

func TestEndpoint_CapsAddressLength(t *testing.T) {
	long := strings.Repeat("a", MaxAddressLength+50)
	e := NewEndpoint(long)
	assert.Len(t, []rune(e.Address), MaxAddressLength)

	// Multi-byte runes must not be split mid-character.
	e = NewEndpoint(strings.Repeat("é", MaxAddressLength+1))
	assert.Len(t, []rune(e.Address), MaxAddressLength)
}

func TestNewRoute_NormalizesEndpoints(t *testing.T) {
	rt, err := NewRoute(" user-1 ",
		Endpoint{Address: "  Origin St  "},
		Endpoint{Address: strings.Repeat("d", 300)},
	)
	require.NoError(t, err)

	assert.Equal(t, "user-1", rt.UserID())
	assert.Equal(t, "Origin St", rt.Origin().Address)
	assert.Len(t, rt.Destination().Address, MaxAddressLength)
	assert.NotEqual(t, rt.ID().String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, rt.CreatedAt(), rt.UpdatedAt())
}

func TestNewRoute_RequiredFields(t *testing.T) {
	cases := []struct {
		name                string
		userID              string
		origin, destination string
		wantErr             string
	}{
		{"missing user", "", "a", "b", "user ID is required"},
		{"blank user", "   ", "a", "b", "user ID is required"},
		{"missing origin", "u", "", "b", "origin address is required"},
		{"whitespace origin", "u", "   ", "b", "origin address is required"},
		{"missing destination", "u", "a", "", "destination address is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRoute(tc.userID, Endpoint{Address: tc.origin}, Endpoint{Address: tc.destination})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRoute_IsOwnedBy(t *testing.T) {
	rt, err := NewRoute("owner", NewEndpoint("a"), NewEndpoint("b"))
	require.NoError(t, err)

	assert.True(t, rt.IsOwnedBy("owner"))
	assert.False(t, rt.IsOwnedBy("someone-else"))
}
