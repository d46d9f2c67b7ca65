/*
Package vks implements a safety layer over a Vulkan-like graphics and
compute API. Vulkan is enormously powerful but pushes all object lifetime,
synchronization and state management onto the application, and getting any
of it wrong corrupts the process in ways that surface far from the bug.

This package wraps the raw handles in objects that make the unwritten rules
of the underlying API hard or impossible to break:

Ownership. Every wrapper holds a reference on its parent (a command buffer
on its pool, a pool on its queue, a buffer on its device), so destruction
always happens child-before-parent no matter the order in which the
application drops its references. Destruction is triggered by Release and
runs at most once.

Synchronization. Handles the underlying API forbids to use concurrently
(queues, command pools, command buffers, descriptor pools, fences) live in
Synced cells. Foreign calls on them are only possible while holding the
cell's guard, and a panic while holding a guard poisons the cell so the
damage cannot spread silently.

Recording. Command buffer recording is driven through capability objects:
Begin returns a Recording, BeginRenderPass consumes it and returns a
PassRecording, and only the operations legal in the current state exist on
the current type. Draw calls outside a render pass or ending a buffer with
an open pass do not compile. The Record helper additionally guarantees the
recording is ended even when the body panics.

Validation. Constructors for barriers and copy regions check their range
arithmetic against the sizes recorded at resource creation. Devices created
with StrictValidation additionally cross-check devices and queue families
at submission and creation boundaries, turning whole classes of misuse into
ordinary Go errors before the foreign API ever sees them.

The package talks to the underlying API exclusively through the
foreign.Dispatch interface. The production implementation backed by the
Vulkan loader lives in the foreign/vulkan subpackage; tests substitute
their own.
*/
package vks
