package main

// Compile-time table sizes and memory layout, centralized in one file the
// way xv6's memlayout.go centralizes hardware addresses. A
// freestanding kernel has no config file to load before it has brought up
// its own filesystem, so these are constants, not flags.

const (
	MaxProcs         = 16
	MaxSems          = 32
	MaxDirs          = 16
	MaxFiles         = 64
	MaxFileSize      = 16 * 1024
	MaxNameLen       = 16
	DefaultStackSize = 4096
)

// Physical memory layout for QEMU's -machine virt.
const (
	UART0    = uintptr(0x10000000)
	UART0IRQ = 10

	// The boot ROM jumps here in machine mode; -kernel loads the image here.
	KERNBASE = uintptr(0x80000000)
	PHYSTOP  = KERNBASE + 128*1024*1024
)

// mcause values that this core treats as an ecall trap. The nominal value
// is 11 (M-mode ecall, since tasks run with machine privileges); 8 and 9
// (U-mode/S-mode ecall) are accepted equivalents for a future MPP-aware
// boot path.
const (
	CauseEcallU = 8
	CauseEcallS = 9
	CauseEcallM = 11
)

// Syscall numbers, matching the Linux RISC-V ABI values the original
// kernel borrowed for EXIT/YIELD plus a private 150-153 range for the
// semaphore primitives this core adds.
const (
	SyscallExit       = 93
	SyscallYield      = 124
	SyscallSemCreate  = 150
	SyscallSemWait    = 151
	SyscallSemSignal  = 152
	SyscallSemDestroy = 153
)
