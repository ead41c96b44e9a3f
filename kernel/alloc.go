package main

import "unsafe"

// Bump allocator: a monotonic forward cursor over [heapStart, heapEnd).
// Allocates 16-byte aligned, never frees. Grounded on kernel/kalloc.go's
// shape (a package-level cursor plus a linker-provided extent symbol) but
// generalized from a fixed-page freelist to an arbitrary-size append-only
// allocator, matching original_source/memory.cpp's kmalloc exactly: it
// is append-only and never frees.
//
// heapStartAddr/heapEndAddr follow kernel/kalloc.go's get_end() pattern and
// are declared per-GOARCH (alloc_riscv64.go + heap_riscv64.s supply the
// real linker-symbol-address bodies; alloc_other.go gives `go test` a
// host-backed heap on any other GOARCH): the linker script defines
// _kernel_heap_start/_kernel_heap_end as zero-sized symbols, and a tiny asm
// stub returns the symbol's address (not its contents), the same trick
// xv6's get_end/get_etext use.

var (
	heapCursor uintptr
	heapInited bool
)

func allocInit() {
	heapCursor = heapStartAddr()
	heapInited = true
}

const allocAlign = 16

func alignUp(n uintptr) uintptr {
	return (n + allocAlign - 1) &^ (allocAlign - 1)
}

// kmalloc returns 0 on failure (out of memory), matching the sentinel
// convention used throughout the kernel's error design. It lazily calls
// allocInit on first use so callers that never go through KMain's boot
// sequence (every test that calls create/createFromBinary directly) still
// get a valid, non-zero starting cursor: heapStartAddr() landing on the
// literal address 0 would otherwise be indistinguishable from the
// out-of-memory sentinel on the very first allocation.
func kmalloc(size uintptr) uintptr {
	if !heapInited {
		allocInit()
	}
	if size == 0 {
		return 0
	}
	size = alignUp(size)

	end := heapEndAddr()
	if heapCursor+size > end || heapCursor+size < heapCursor {
		printStr("(alloc) out of memory\n")
		return 0
	}

	p := heapCursor
	heapCursor += size
	return p
}

// unsafeBytesAt views n bytes of kernel memory starting at addr as a
// slice, used to copy an embedded user binary into its freshly
// kmalloc'd code buffer.
func unsafeBytesAt(addr uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}
