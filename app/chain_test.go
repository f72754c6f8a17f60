package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/unichantest"
	"github.com/unichan/unichan/x/utils"
)

func TestChain(t *testing.T) {
	c1 := &countingDecorator{}
	c2 := &countingDecorator{}
	c3 := &countingDecorator{}
	h := &unichantest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		panicAtHeightDecorator(6),
		c3,
	).WithHandler(h)

	bg := context.Background()

	_, err := stack.Check(bg, nil, nil)
	assert.NoError(t, err)
	ctx := unichan.WithHeight(bg, 4)
	_, err = stack.Deliver(ctx, nil, nil)
	assert.NoError(t, err)

	// decorators are counted double, once in, once out
	assert.Equal(t, 4, c1.count)
	assert.Equal(t, 4, c2.count)
	assert.Equal(t, 4, c3.count)
	assert.Equal(t, 2, h.CallCount())

	// now, let's trigger a panic
	ctx = unichan.WithHeight(bg, 8)
	_, err = stack.Check(ctx, nil, nil)
	assert.Error(t, err)
	_, err = stack.Deliver(ctx, nil, nil)
	assert.Error(t, err)

	assert.Equal(t, 8, c1.count)
	// c2 is called twice in, but the panic skips the way out
	assert.Equal(t, 6, c2.count)
	// and those two ins never make it to c3
	assert.Equal(t, 4, c3.count)
	assert.Equal(t, 2, h.CallCount())
}

// countingDecorator counts every pass, once in and once out.
type countingDecorator struct {
	count int
}

var _ unichan.Decorator = (*countingDecorator)(nil)

func (c *countingDecorator) Check(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx, next unichan.Checker) (*unichan.CheckResult, error) {
	c.count++
	res, err := next.Check(ctx, db, tx)
	c.count++
	return res, err
}

func (c *countingDecorator) Deliver(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx, next unichan.Deliverer) (*unichan.DeliverResult, error) {
	c.count++
	res, err := next.Deliver(ctx, db, tx)
	c.count++
	return res, err
}

// panicAtHeightDecorator panics during processing when the context
// carries a block height above the configured one.
type panicAtHeightDecorator int64

var _ unichan.Decorator = panicAtHeightDecorator(0)

func (p panicAtHeightDecorator) Check(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx, next unichan.Checker) (*unichan.CheckResult, error) {
	if val, _ := unichan.GetHeight(ctx); val >= int64(p) {
		panic("too high")
	}
	return next.Check(ctx, db, tx)
}

func (p panicAtHeightDecorator) Deliver(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx, next unichan.Deliverer) (*unichan.DeliverResult, error) {
	if val, _ := unichan.GetHeight(ctx); val >= int64(p) {
		panic("too high")
	}
	return next.Deliver(ctx, db, tx)
}
