package domain

import (
	"context"
	"errors"
	"fmt"
)

// ---------- Errores de dominio ----------
var (
	ErrUnknownEventKind = errors.New("unknown event kind")
	ErrMalformedEvent   = errors.New("malformed event")
	ErrPublishFailed    = errors.New("publish failed")
)

// MalformedEventError identifica el campo que impidió decodificar el evento.
type MalformedEventError struct {
	Kind  Kind
	Field string
	Err   error
}

func (e *MalformedEventError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s event: field %q: %v", e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("malformed %s event: field %q", e.Kind, e.Field)
}

func (e *MalformedEventError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedEvent}
	}
	return []error{ErrMalformedEvent, e.Err}
}

// PublishError envuelve el fallo devuelto por el sink.
type PublishError struct {
	Channel string
	Type    string
	Err     error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish %q to %s: %v", e.Type, e.Channel, e.Err)
}

func (e *PublishError) Unwrap() []error {
	return []error{ErrPublishFailed, e.Err}
}

// ---------- Interfaces (Ports) ----------

// Publisher es el sink de transporte. Timeouts y cancelación son cosa del adapter.
type Publisher interface {
	Publish(ctx context.Context, channel string, message Message) error
}

// IDGenerator debe ser seguro para uso concurrente.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapta una función a IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }
