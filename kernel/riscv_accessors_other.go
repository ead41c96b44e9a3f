//go:build !riscv64

package main

// Host-only stand-ins for the riscv64 CSR accessors, so `go test ./...`
// compiles and links on a development machine's own GOARCH. Nothing here
// ever runs in production: the riscv64 build uses
// riscv_accessors_riscv64.go + csr_riscv64.s instead. Behavior is kept
// close enough to real CSR semantics (mepc/mstatus/mtvec hold whatever was
// last written) that tests exercising dispatchSyscall's mepc rewriting
// still observe the expected values.

var (
	fakeMcause  uintptr
	fakeMepc    uintptr
	fakeMstatus uintptr
	fakeMtvec   uintptr
)

func r_mcause() uintptr    { return fakeMcause }
func r_mepc() uintptr      { return fakeMepc }
func w_mepc(pc uintptr)    { fakeMepc = pc }
func r_mstatus() uintptr   { return fakeMstatus }
func w_mtvec(addr uintptr) { fakeMtvec = addr }
func r_mtvec() uintptr     { return fakeMtvec }
func wfi()      {}
func fenceRW()  {}
