package unichantest

import unichan "github.com/unichan/unichan"

// Handler is a mock implementation of the unichan.Handler interface.
type Handler struct {
	checkCall   int
	CheckResult unichan.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult unichan.DeliverResult
	DeliverErr    error
}

var _ unichan.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.CheckResult, error) {
	h.checkCall++
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.DeliverResult, error) {
	h.deliverCall++
	return &h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
