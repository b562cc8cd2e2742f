package variant

import (
	"reflect"

	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/layout"
)

// Alternative describes one member of a schema's closed type set. It
// carries the member's reflect type, its layout requirement, and the
// operations the schema's dispatch tables are built from. Create one with
// Alt.
type Alternative struct {
	typ       reflect.Type
	info      layout.Info
	construct func(value any) (any, error)
	destroy   func(box any)
	clone     func(box any) (any, error)
	move      func(box any) any
}

// Type returns the Go type this alternative stores.
func (a Alternative) Type() reflect.Type {
	return a.typ
}

// Option configures an alternative's operations.
type Option[T any] func(*config[T])

type config[T any] struct {
	destroy  func(*T)
	copy     func(T) (T, error)
	move     func(*T) T
	validate func(T) error
}

// WithDestructor registers a finalizer run exactly once when a stored
// value of this alternative is destroyed or replaced.
func WithDestructor[T any](fn func(*T)) Option[T] {
	return func(c *config[T]) {
		c.destroy = fn
	}
}

// WithCopier overrides the default shallow value copy used when a
// container holding this alternative is copied. The copier must not
// mutate its input; returning an error fails the copy.
func WithCopier[T any](fn func(T) (T, error)) Option[T] {
	return func(c *config[T]) {
		c.copy = fn
	}
}

// WithMover overrides the default move, which transfers the stored value
// without copying. The mover receives the source value in place and
// returns the value the destination takes; use it for types that must
// reset the source on move.
func WithMover[T any](fn func(*T) T) Option[T] {
	return func(c *config[T]) {
		c.move = fn
	}
}

// WithValidator registers a check run before a bare value of this
// alternative is stored. A validator error fails the construction and
// leaves the destination container empty.
func WithValidator[T any](fn func(T) error) Option[T] {
	return func(c *config[T]) {
		c.validate = fn
	}
}

// Alt builds the Alternative descriptor for T. The returned operations
// close over T, so the schema's tables can run them with nothing but a
// discriminant.
func Alt[T any](opts ...Option[T]) Alternative {
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	typ := reflect.TypeFor[T]()

	return Alternative{
		typ:  typ,
		info: layout.Of(typ),
		construct: func(value any) (any, error) {
			v := value.(T)
			if cfg.validate != nil {
				if err := cfg.validate(v); err != nil {
					return nil, errors.ConstructFailed(typ.String(), err)
				}
			}
			return &v, nil
		},
		destroy: func(box any) {
			if cfg.destroy != nil {
				cfg.destroy(box.(*T))
			}
		},
		clone: func(box any) (any, error) {
			src := box.(*T)
			if cfg.copy != nil {
				v, err := cfg.copy(*src)
				if err != nil {
					return nil, errors.ConstructFailed(typ.String(), err)
				}
				return &v, nil
			}
			v := *src
			return &v, nil
		},
		move: func(box any) any {
			if cfg.move != nil {
				v := cfg.move(box.(*T))
				return &v
			}
			return box
		},
	}
}
