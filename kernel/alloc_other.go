//go:build !riscv64

package main

import "unsafe"

// Host-only heap backing for `go test`: a real Go-allocated byte slice
// stands in for the linker-script-defined extent riscv64 uses.

var hostHeap = make([]byte, 4<<20)

func heapStartAddr() uintptr {
	return uintptr(unsafe.Pointer(&hostHeap[0]))
}

func heapEndAddr() uintptr {
	return heapStartAddr() + uintptr(len(hostHeap))
}
