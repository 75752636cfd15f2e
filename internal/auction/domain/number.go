package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Number guarda el literal JSON tal como llegó: un número (10.50) o una
// cadena numérica ("5"). Se republica sin cambiar ni el valor ni el tipo JSON.
type Number string

// ValidNumber indica si raw es un número JSON o una cadena con un número válido.
func ValidNumber(raw []byte) bool {
	var n json.Number
	return json.Unmarshal(raw, &n) == nil && n != ""
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if !ValidNumber(data) {
		return fmt.Errorf("invalid number %s", data)
	}
	*n = Number(data)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	return []byte(n), nil
}

// String devuelve el valor sin comillas, apto para nombres de canal.
func (n Number) String() string {
	var s string
	if len(n) > 0 && n[0] == '"' && json.Unmarshal([]byte(n), &s) == nil {
		return s
	}
	return string(n)
}
