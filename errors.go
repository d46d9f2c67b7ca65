package vks

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/vulkayes/vulkayes-go/foreign"
)

// Locally detected precondition violations. These are returned before any
// foreign call is issued. Most are only checked when the device was created
// with StrictValidation; the foreign runtime's own validation layers can
// catch the same issues in debug tooling, so release builds may skip the
// cost. Match with errors.Is.
var (
	ErrNilDispatch              = errors.New("vks: dispatch must not be nil")
	ErrNullHandle               = errors.New("vks: foreign handle must not be null")
	ErrZeroCount                = errors.New("vks: count must be greater than zero")
	ErrUsageEmpty               = errors.New("vks: usage flags must not be empty")
	ErrZeroSize                 = errors.New("vks: size must not be zero")
	ErrRangeOutOfBounds         = errors.New("vks: range exceeds the resource's recorded bounds")
	ErrDeviceMismatch           = errors.New("vks: cooperating objects must be created from the same device")
	ErrWaitStagesEmpty          = errors.New("vks: wait stage mask must not be empty for any wait")
	ErrSubmitDeviceMismatch     = errors.New("vks: wait semaphores, command buffers and signal semaphores must be from the queue's device")
	ErrQueueFamilyMismatch      = errors.New("vks: command buffer's pool and queue are from different queue families")
	ErrQueueFenceDeviceMismatch = errors.New("vks: queue and fence must be from the same device")
	ErrBindingsEmpty            = errors.New("vks: at least one layout binding is required")
	ErrPoolSizesEmpty           = errors.New("vks: at least one pool size is required")
	ErrLayoutsEmpty             = errors.New("vks: at least one set layout is required")
	ErrSubpassesEmpty           = errors.New("vks: at least one subpass is required")
	ErrCodeSizeInvalid          = errors.New("vks: shader code size must be a non-zero multiple of four")
	ErrPushConstantSizeInvalid  = errors.New("vks: push constant data must be a non-zero multiple of four bytes")
	ErrDataSizeInvalid          = errors.New("vks: inline buffer data and offset must be four-byte aligned, non-empty and at most 65536 bytes")
	ErrMemoryNotBound           = errors.New("vks: resource has no bound device memory")
	ErrMemoryAlreadyBound       = errors.New("vks: resource already has bound device memory")
)

// checkResult translates a foreign result code for the entry point op.
// Success-class codes yield nil. Error codes listed in documented wrap the
// matching sentinel with the entry point name. Any other code indicates the
// foreign interface violated its own documentation, which leaves no safe
// continuation.
func checkResult(op string, r foreign.Result, documented ...foreign.Result) error {
	if r >= 0 {
		return nil
	}
	for _, d := range documented {
		if r == d {
			return errors.Wrap(r.Err(), op)
		}
	}
	panic(fmt.Sprintf("vks: %s returned undocumented result %s", op, r))
}
