package main

// Machine-mode trap handling: a per-GOARCH init routine (trap_riscv64.go
// links it to trapvec_riscv64.s; trap_other.go no-ops it for `go test`), a
// Go handler called back from the trampoline by its ordinary mangled
// symbol name, and an mcause-driven switch, generalized from xv6's
// supervisor-mode timer-interrupt trap to this core's machine-mode
// ecall-only trap: there is no timer, and the only trap cause this kernel
// expects is a syscall.

// Trapframe carries the syscall number and arguments out of the
// trampoline and the (possibly updated) return value back in. It exists
// so kernelTrap's dispatch logic can be driven from a fake in tests
// instead of a real trap.
type Trapframe struct {
	a0, a1, a2, a3 uintptr
	a7             uintptr
}

// kernelTrap is called from trapvec_riscv64.s by its ordinary mangled Go
// symbol name (·kernelTrap); //export has no effect here since this
// package never imports "C".
//
//go:nosplit
func kernelTrap(tf *Trapframe) {
	cause := r_mcause()
	if !isEcallCause(cause) {
		printf("unhandled trap: mcause=")
		printHex(uint32(cause))
		printf(" mepc=")
		printHex(uint32(r_mepc()))
		printf(" (")
		printStr(currentPrivilegeName())
		printf(")\n")
		for {
			wfi()
		}
	}
	dispatchSyscall(tf)
}

// resumeInPlace advances mepc past the 4-byte ecall so the task continues
// with the next instruction.
func resumeInPlace() {
	w_mepc(r_mepc() + 4)
}

// returnToScheduler rewrites mepc to the scheduler's saved resume point so
// the pending mret lands back in dispatchTask's post-dispatch code
// instead of the interrupted task.
func returnToScheduler() {
	w_mepc(kernelResumePC)
}

func dispatchSyscall(tf *Trapframe) {
	switch tf.a7 {
	case SyscallExit:
		if currentSlot >= 0 {
			procTable[currentSlot].state = Zombie
		}
		returnToScheduler()

	case SyscallYield:
		if currentSlot >= 0 && procTable[currentSlot].state == Running {
			procTable[currentSlot].state = Ready
		}
		returnToScheduler()

	case SyscallSemCreate:
		id := semCreate(int(int32(tf.a0)))
		tf.a0 = uintptr(int64(int32(id)))
		resumeInPlace()

	case SyscallSemWait:
		if semWait(int(int32(tf.a0))) {
			returnToScheduler()
		} else {
			resumeInPlace()
		}

	case SyscallSemSignal:
		semSignal(int(int32(tf.a0)))
		resumeInPlace()

	case SyscallSemDestroy:
		if semDestroy(int(int32(tf.a0))) {
			tf.a0 = 0
		} else {
			tf.a0 = ^uintptr(0)
		}
		resumeInPlace()

	default:
		printf("unknown syscall: ")
		printHex(uint32(tf.a7))
		printf("\n")
		resumeInPlace()
	}
}
