//go:build riscv64

package main

import _ "unsafe"

//go:linkname shellEntryAddr shellEntryAddr
func shellEntryAddr() uintptr
