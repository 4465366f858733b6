package cmd

import "context"

// Middleware wraps a command (logging, recovery, access checks).
type Middleware func(Command) Command

// Apply wraps c with mws in order, so the last middleware is the outermost.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		if mw != nil {
			c = mw(c)
		}
	}
	return c
}

// Unwrappable is implemented by middleware wrappers so adapters can reach
// provider interfaces (slash definitions) on the inner command.
type Unwrappable interface {
	Command
	Unwrap() Command
}

type wrapped struct {
	inner Command
	run   func(ctx context.Context, inv *Invocation) error
}

func (w *wrapped) Name() string        { return w.inner.Name() }
func (w *wrapped) Description() string { return w.inner.Description() }
func (w *wrapped) Unwrap() Command     { return w.inner }

func (w *wrapped) Run(ctx context.Context, inv *Invocation) error {
	if w.run == nil {
		return w.inner.Run(ctx, inv)
	}
	return w.run(ctx, inv)
}

// Wrap returns a command that delegates identity to c and executes run.
func Wrap(c Command, run func(ctx context.Context, inv *Invocation) error) Command {
	return &wrapped{inner: c, run: run}
}

// Root strips every middleware layer off c.
func Root(c Command) Command {
	for {
		u, ok := c.(Unwrappable)
		if !ok {
			return c
		}
		c = u.Unwrap()
	}
}
