//go:build riscv64

package main

import _ "unsafe"

// heapStartAddr/heapEndAddr read the linker script's _kernel_heap_start/
// _kernel_heap_end symbol addresses; bodies live in heap_riscv64.s.

//go:linkname heapStartAddr heapStartAddr
func heapStartAddr() uintptr

//go:linkname heapEndAddr heapEndAddr
func heapEndAddr() uintptr
