package unichantest

import (
	"fmt"
	"sync/atomic"

	unichan "github.com/unichan/unichan"
)

var condCounter int64

// NewCondition returns a mock condition, unique within this process.
func NewCondition() unichan.Condition {
	n := atomic.AddInt64(&condCounter, 1)
	data := []byte(fmt.Sprintf("mock-condition-%d", n))
	return unichan.NewCondition("mock", "cond", data)
}

// NewAddress returns the address of a mock condition, unique within
// this process.
func NewAddress() unichan.Address {
	return NewCondition().Address()
}
