package app

import (
	unichan "github.com/unichan/unichan"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []unichan.Decorator
}

// ChainDecorators takes a chain of decorators,
// and upon adding a final Handler (WithHandler),
// returns a Handler that will execute this whole stack.
func ChainDecorators(chain ...unichan.Decorator) Decorators {
	return Decorators{
		chain: chain,
	}
}

// Chain allows us to keep adding more decorators to the chain
func (d Decorators) Chain(chain ...unichan.Decorator) Decorators {
	return Decorators{
		chain: append(d.chain, chain...),
	}
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain before calling the final Handler
func (d Decorators) WithHandler(h unichan.Handler) unichan.Handler {
	res := h
	for i := len(d.chain) - 1; i >= 0; i-- {
		res = decoratedHandler{
			d: d.chain[i],
			h: res,
		}
	}
	return res
}

type decoratedHandler struct {
	d unichan.Decorator
	h unichan.Handler
}

var _ unichan.Handler = decoratedHandler{}

// Check passes the handler into the decorator, implements Handler
func (h decoratedHandler) Check(ctx unichan.Context, store unichan.KVStore, tx unichan.Tx) (*unichan.CheckResult, error) {
	return h.d.Check(ctx, store, tx, h.h)
}

// Deliver passes the handler into the decorator, implements Handler
func (h decoratedHandler) Deliver(ctx unichan.Context, store unichan.KVStore, tx unichan.Tx) (*unichan.DeliverResult, error) {
	return h.d.Deliver(ctx, store, tx, h.h)
}
