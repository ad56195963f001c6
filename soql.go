package soql

import (
	"io"
	"log/slog"
)

// Builder accumulates the parts of a SOQL SELECT statement. Every mutating
// method returns the same Builder so calls can be chained. A Builder is not
// safe for concurrent use; Clone it to branch a query.
type Builder struct {
	Statement *Statement
	logger    *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used to report rendered queries at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// New returns an empty Builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		Statement: &Statement{},
		logger:    discard,
	}
	return b.With(opts...)
}

// Select returns a new Builder selecting fields.
// Call AddSelect instead if the builder already exists.
func Select(fields ...string) *Builder {
	return New().AddSelect(fields...)
}

// From returns a new Builder targeting object.
// Call SetFrom instead if the builder already exists.
func From(object string) *Builder {
	return New().SetFrom(object)
}

// With applies opts to b.
func (b *Builder) With(opts ...Option) *Builder {
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Clone returns a copy of b that shares no state with it.
func (b *Builder) Clone() *Builder {
	return &Builder{
		Statement: b.Statement.Clone(),
		logger:    b.logger,
	}
}
