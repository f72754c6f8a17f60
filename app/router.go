package app

import (
	"fmt"
	"regexp"

	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
)

// isPath describes a valid message path. Paths are like URLs,
// a lowercase extension name, a slash, and the action name.
var isPath = regexp.MustCompile(`^[a-z]+(/[a-z0-9_]+)*$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	handlers map[string]unichan.Handler
}

var _ unichan.Registry = (*Router)(nil)
var _ unichan.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]unichan.Handler),
	}
}

// Handle implements Registry interface. It registers a handler for
// all messages with the path of the given message. Handle panics if
// a handler for given message type is already registered or if the
// path is invalid.
func (r *Router) Handle(m unichan.Msg, h unichan.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.handlers[path] = h
}

// handler returns the registered Handler for this message, or
// a notFoundHandler if no match can be made
func (r *Router) handler(m unichan.Msg) unichan.Handler {
	path := m.Path()
	if h, ok := r.handlers[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on the message path
func (r *Router) Check(ctx unichan.Context, store unichan.KVStore, tx unichan.Tx) (*unichan.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire message")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path
func (r *Router) Deliver(ctx unichan.Context, store unichan.KVStore, tx unichan.Tx) (*unichan.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire message")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound with the message path.
type notFoundHandler string

var _ unichan.Handler = notFoundHandler("")

func (path notFoundHandler) Check(ctx unichan.Context, store unichan.KVStore, tx unichan.Tx) (*unichan.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(ctx unichan.Context, store unichan.KVStore, tx unichan.Tx) (*unichan.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
