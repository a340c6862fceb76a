package route

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MaxAddressLength is the persisted cap on an endpoint address.
const MaxAddressLength = 200

// Endpoint is one end of a saved route. Map clients send it either as a bare
// JSON string or as an object carrying an "address" field; both shapes decode
// to the same normalized form (trimmed, capped at MaxAddressLength runes).
type Endpoint struct {
	Address string `json:"address"`
}

// NewEndpoint builds a normalized endpoint from a raw address string.
func NewEndpoint(address string) Endpoint {
	return Endpoint{Address: normalizeAddress(address)}
}

// UnmarshalJSON accepts both the string and the object shape.
func (e *Endpoint) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Address = normalizeAddress(s)
		return nil
	}

	var obj struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("endpoint must be a string or an object with an address field")
	}
	e.Address = normalizeAddress(obj.Address)
	return nil
}

// IsZero reports whether the endpoint carries no address.
func (e Endpoint) IsZero() bool { return e.Address == "" }

func normalizeAddress(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > MaxAddressLength {
		s = string(r[:MaxAddressLength])
	}
	return s
}
