package application

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/davicafu/apollo-events/internal/auction/domain"
)

// payloadField se usa cuando el fallo no se puede atribuir a un campo concreto.
const payloadField = "$"

var errInvalidNumber = errors.New("not a number")

// fieldRules describe qué rutas (con puntos) son obligatorias en el payload.
// nested: si el objeto padre viene informado, sus hijos pasan a ser obligatorios.
// Un padre opcional con valor falso (null, false, 0, "", {}, []) se trata como ausente.
// numeric: rutas que, si vienen, deben ser un número o una cadena numérica.
type fieldRules struct {
	required []string
	nested   map[string][]string
	numeric  []string
}

var bidFields = []string{"amount.value", "amount.currency", "user_id", "created_at"}

// decode valida los campos y luego deserializa en T.
// Nunca devuelve un T parcial junto con un error.
func decode[T any](kind domain.Kind, raw []byte, rules fieldRules) (T, error) {
	var evt T

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return evt, &domain.MalformedEventError{Kind: kind, Field: payloadField, Err: err}
	}
	if fields == nil {
		return evt, &domain.MalformedEventError{Kind: kind, Field: payloadField, Err: errors.New("payload is null")}
	}

	for _, path := range rules.required {
		if !present(fields, path) {
			return evt, &domain.MalformedEventError{Kind: kind, Field: path}
		}
	}

	dropped := false
	for parent, children := range rules.nested {
		if value, ok := fields[parent]; ok && falsy(value) {
			delete(fields, parent)
			dropped = true
			continue
		}
		if !present(fields, parent) {
			continue
		}
		for _, child := range children {
			path := parent + "." + child
			if !present(fields, path) {
				return evt, &domain.MalformedEventError{Kind: kind, Field: path}
			}
		}
	}

	for _, path := range rules.numeric {
		value, ok := lookup(fields, path)
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		if !domain.ValidNumber(value) {
			return evt, &domain.MalformedEventError{Kind: kind, Field: path, Err: errInvalidNumber}
		}
	}

	if dropped {
		var err error
		if raw, err = json.Marshal(fields); err != nil {
			return evt, &domain.MalformedEventError{Kind: kind, Field: payloadField, Err: err}
		}
	}

	if err := json.Unmarshal(raw, &evt); err != nil {
		field := payloadField
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			field = typeErr.Field
		}
		return evt, &domain.MalformedEventError{Kind: kind, Field: field, Err: err}
	}
	return evt, nil
}

// lookup sigue la ruta con puntos y devuelve el valor crudo si existe.
func lookup(fields map[string]json.RawMessage, path string) (json.RawMessage, bool) {
	head, rest, nested := strings.Cut(path, ".")
	value, ok := fields[head]
	if !ok || !nested {
		return value, ok
	}

	var child map[string]json.RawMessage
	if err := json.Unmarshal(value, &child); err != nil {
		return nil, false
	}
	return lookup(child, rest)
}

// present comprueba que la ruta exista y que el valor final no esté vacío.
func present(fields map[string]json.RawMessage, path string) bool {
	value, ok := lookup(fields, path)
	return ok && !blank(value)
}

// blank trata null, "" y {} como ausentes.
func blank(value json.RawMessage) bool {
	v := bytes.TrimSpace(value)
	if len(v) == 0 {
		return true
	}
	switch string(v) {
	case "null", `""`:
		return true
	}
	if v[0] == '{' {
		inner := bytes.TrimSpace(v[1 : len(v)-1])
		return len(inner) == 0
	}
	return false
}

// falsy amplía blank con false, 0 y [] para objetos opcionales.
func falsy(value json.RawMessage) bool {
	if blank(value) {
		return true
	}
	v := bytes.TrimSpace(value)
	switch string(v) {
	case "false":
		return true
	}
	if v[0] == '[' {
		return len(bytes.TrimSpace(v[1:len(v)-1])) == 0
	}
	var n json.Number
	if json.Unmarshal(v, &n) == nil && v[0] != '"' {
		f, err := n.Float64()
		return err == nil && f == 0
	}
	return false
}
