package main

// CSR and control-register access. Every read/write of an actual machine
// CSR has to cross into hand-written assembly (Go has no inline-asm
// equivalent for CSR instructions); the pattern mirrors xv6's own
// riscv.go, which keeps pure bit-manipulation helpers in Go and reaches
// into assembly only for what the language cannot express directly.
//
// This core has no MMU or paging, so unlike xv6's riscv.go there are no
// PTE/pagetable helpers here; what remains is the CSR surface the
// scheduler and trap handler actually touch.
//
// r_mcause/r_mepc/w_mepc/r_mstatus/w_mtvec/r_mtvec/wfi/fenceRW are declared
// per-GOARCH: riscv_accessors_riscv64.go links them to csr_riscv64.s's real
// CSR instructions, riscv_accessors_other.go gives them a host-only Go body
// backed by fake register state so `go test` links and runs on a
// development machine that isn't riscv64.

const (
	mstatusMPPShift = 11
	mstatusMPPMask  = uintptr(0x3) << mstatusMPPShift

	mstatusMPPMachine    = uintptr(0x3) << mstatusMPPShift
	mstatusMPPSupervisor = uintptr(0x1) << mstatusMPPShift
)

// currentPrivilegeName decodes mstatus.MPP for diagnostic printing only;
// this core never switches privilege levels on mret.
func currentPrivilegeName() string {
	switch r_mstatus() & mstatusMPPMask {
	case mstatusMPPMachine:
		return "Machine Mode"
	case mstatusMPPSupervisor:
		return "Supervisor Mode"
	default:
		return "User Mode"
	}
}

// isEcallCause reports whether cause is one of the accepted ecall-trap
// values: the core assumes 11 (M-mode ecall) but accepts 8/9 as
// equivalent entry points if a future boot path places tasks in U/S mode.
func isEcallCause(cause uintptr) bool {
	return cause == CauseEcallU || cause == CauseEcallS || cause == CauseEcallM
}
