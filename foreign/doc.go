/*
Package foreign declares the boundary with the low-level graphics interface
that package vks wraps.

The graphics runtime hands out opaque handles for every object it manages
(devices, queues, buffers, images, command buffers, synchronization
primitives). Those handles carry no safety of their own: they are plain
integer-like values that remain "valid" to the type system long after the
underlying object has been destroyed, and many of them are documented as
unsafe to use from multiple threads at once.

This package models that boundary as data plus a single Dispatch interface.
Handles are distinct uint64 types (the zero value is the null handle), result
codes are the Result type, and every creation call takes a create-info struct
mirroring the documented creation parameters. Package vks only ever talks to
the graphics runtime through a Dispatch value, which keeps the wrapper
testable against a recording fake and keeps the one cgo-infested file in
foreign/vulkan.

The production Dispatch lives in foreign/vulkan and binds to
github.com/vulkan-go/vulkan.
*/
package foreign
