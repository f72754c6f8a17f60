package unichan

import (
	"context"
	"time"

	"github.com/tendermint/tendermint/libs/log"
	"github.com/unichan/unichan/errors"
)

// Context is just a standard context, we use this alias so the type
// signatures are more self-describing.
type Context = context.Context

type contextKey int

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyBlockTime
	contextKeyLogger
)

// DefaultLogger is used for all context that have not
// set anything themselves.
var DefaultLogger = log.NewNopLogger()

// WithHeight sets the block height into the Context.
// Height must be non-negative when set.
func WithHeight(ctx Context, height int64) Context {
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height and true, if the block height
// was set, otherwise 0 and false.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id into the Context.
func WithChainID(ctx Context, chainID string) Context {
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id from the context. It panics if the chain
// id was not set, as it is required for a functioning application.
func GetChainID(ctx Context) string {
	val, ok := ctx.Value(contextKeyChainID).(string)
	if !ok {
		panic("no chain id set in the context")
	}
	return val
}

// WithBlockTime sets the block time into the Context. Block time is always
// represented in UTC.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyBlockTime, t.UTC())
}

// BlockTime returns the current block time. An error is returned if the
// block time is not present in the context. Every operation of the ledger
// observes a single time value, consistent within its execution.
func BlockTime(ctx Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyBlockTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	return val, nil
}

// WithLogger sets the logger into the Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger from the context, or the DefaultLogger if
// none was set.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}

// IsExpired returns true if given time is in the past as compared to the
// "now" as declared for the context. Expiration is inclusive, meaning that
// if current time is equal to the expiration time then this function
// returns true.
//
// This function panics if the block time is not provided in the context.
// The ledger host must always declare the current time.
func IsExpired(ctx Context, t UnixTime) bool {
	now, err := BlockTime(ctx)
	if err != nil {
		panic(err)
	}
	return t <= AsUnixTime(now)
}
