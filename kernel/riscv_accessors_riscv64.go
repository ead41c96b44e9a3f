//go:build riscv64

package main

import _ "unsafe"

// CSR accessor declarations with no Go body: the real implementation is
// csr_riscv64.s, assembled automatically by the Go toolchain for this
// GOARCH without needing cgo (the `_riscv64.s` filename suffix is what
// selects it, the same mechanism runtime/asm_riscv64.s relies on).

//go:linkname r_mcause r_mcause
func r_mcause() uintptr

//go:linkname r_mepc r_mepc
func r_mepc() uintptr

//go:linkname w_mepc w_mepc
func w_mepc(pc uintptr)

//go:linkname r_mstatus r_mstatus
func r_mstatus() uintptr

//go:linkname w_mtvec w_mtvec
func w_mtvec(addr uintptr)

//go:linkname r_mtvec r_mtvec
func r_mtvec() uintptr

//go:linkname wfi wfi
func wfi()

//go:linkname fenceRW fenceRW
func fenceRW()
