package foreign

import (
	"errors"
	"fmt"
)

// Result is a foreign result code. Codes greater than or equal to zero are
// success-class statuses, negative codes are errors. Only the codes listed
// here are mapped; the foreign interface documents per entry point which
// subset it may return.
type Result int32

const (
	Success  Result = 0
	NotReady Result = 1
	Timeout  Result = 2

	OutOfHostMemory             Result = -1
	OutOfDeviceMemory           Result = -2
	InitializationFailed        Result = -3
	DeviceLost                  Result = -4
	MemoryMapFailed             Result = -5
	FragmentedPool              Result = -12
	SurfaceLost                 Result = -1000000000
	OutOfDate                   Result = -1000001004
	OutOfPoolMemory             Result = -1000069000
	InvalidOpaqueCaptureAddress Result = -1000257000
)

// Sentinel errors corresponding to the error-class result codes. Callers
// match on these with errors.Is to pick a retry or abort strategy.
var (
	ErrOutOfHostMemory             = errors.New("foreign: out of host memory")
	ErrOutOfDeviceMemory           = errors.New("foreign: out of device memory")
	ErrInitializationFailed        = errors.New("foreign: initialization failed")
	ErrDeviceLost                  = errors.New("foreign: device lost")
	ErrMemoryMapFailed             = errors.New("foreign: memory map failed")
	ErrFragmentedPool              = errors.New("foreign: pool fragmented")
	ErrSurfaceLost                 = errors.New("foreign: surface lost")
	ErrOutOfDate                   = errors.New("foreign: swapchain out of date")
	ErrOutOfPoolMemory             = errors.New("foreign: out of pool memory")
	ErrInvalidOpaqueCaptureAddress = errors.New("foreign: invalid opaque capture address")
)

var resultErrors = map[Result]error{
	OutOfHostMemory:             ErrOutOfHostMemory,
	OutOfDeviceMemory:           ErrOutOfDeviceMemory,
	InitializationFailed:        ErrInitializationFailed,
	DeviceLost:                  ErrDeviceLost,
	MemoryMapFailed:             ErrMemoryMapFailed,
	FragmentedPool:              ErrFragmentedPool,
	SurfaceLost:                 ErrSurfaceLost,
	OutOfDate:                   ErrOutOfDate,
	OutOfPoolMemory:             ErrOutOfPoolMemory,
	InvalidOpaqueCaptureAddress: ErrInvalidOpaqueCaptureAddress,
}

// Err returns nil for success-class codes and the matching sentinel error
// for error-class codes. An error code outside the mapped set yields a
// generic error carrying the raw value.
func (r Result) Err() error {
	if r >= 0 {
		return nil
	}
	if err, ok := resultErrors[r]; ok {
		return err
	}
	return fmt.Errorf("foreign: result code %d", int32(r))
}

func (r Result) String() string {
	switch r {
	case Success:
		return "SUCCESS"
	case NotReady:
		return "NOT_READY"
	case Timeout:
		return "TIMEOUT"
	case OutOfHostMemory:
		return "ERROR_OUT_OF_HOST_MEMORY"
	case OutOfDeviceMemory:
		return "ERROR_OUT_OF_DEVICE_MEMORY"
	case InitializationFailed:
		return "ERROR_INITIALIZATION_FAILED"
	case DeviceLost:
		return "ERROR_DEVICE_LOST"
	case MemoryMapFailed:
		return "ERROR_MEMORY_MAP_FAILED"
	case FragmentedPool:
		return "ERROR_FRAGMENTED_POOL"
	case SurfaceLost:
		return "ERROR_SURFACE_LOST_KHR"
	case OutOfDate:
		return "ERROR_OUT_OF_DATE_KHR"
	case OutOfPoolMemory:
		return "ERROR_OUT_OF_POOL_MEMORY"
	case InvalidOpaqueCaptureAddress:
		return "ERROR_INVALID_OPAQUE_CAPTURE_ADDRESS"
	}
	return fmt.Sprintf("RESULT(%d)", int32(r))
}
