package main

import (
	"riscv64-minikernel/kernel/errs"
)

// Task table and cooperative scheduler: a package-level fixed table, a
// //go:linkname'd stack-switch primitive, and a post-dispatch routine
// called back from assembly by its ordinary Go symbol name, generalized
// from xv6's timer-preemptive round-robin to this core's synchronous,
// ecall-driven dispatch: a task runs until it exits, yields, or blocks,
// never until a timer fires.

type TaskState int

const (
	Free TaskState = iota
	Ready
	Running
	BlockedSem
	Zombie
)

func (s TaskState) String() string {
	switch s {
	case Free:
		return "free"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case BlockedSem:
		return "blocked"
	case Zombie:
		return "zombie"
	default:
		return "?"
	}
}

type Task struct {
	pid  int
	name [MaxNameLen]byte

	entry     uintptr
	stackBase uintptr
	stackSize uintptr
	stackTop  uintptr

	state        TaskState
	blockedSemID int // valid only when state == BlockedSem, else -1
	nextBlocked  int // slot index threaded onto a semaphore's wait list, else -1
}

func setName(buf *[MaxNameLen]byte, s string) {
	for i := range buf {
		buf[i] = 0
	}
	n := len(s)
	if n > MaxNameLen-1 {
		n = MaxNameLen - 1
	}
	copy(buf[:n], s[:n])
}

func (t *Task) Name() string {
	n := 0
	for n < MaxNameLen && t.name[n] != 0 {
		n++
	}
	return string(t.name[:n])
}

var (
	procTable   [MaxProcs]Task
	nextPID     = 1
	currentSlot = -1 // index into procTable of the running task, or -1
)

// kernelSavedSP/kernelResumePC are the single-slot saved kernel
// continuation: the kernel stack pointer and the address dispatchTask's
// assembly resumes at, whether reached by a task's natural return or by
// the trap handler rewriting mepc. dispatchTask is the real hardware
// dispatch primitive: it spills its own return address to the kernel
// stack, saves the kernel stack pointer, switches sp to stackTop, calls entry as an ordinary
// subroutine, and — whether entry returns normally or the trap handler
// diverts mepc back to the shared resume label — restores the kernel
// stack and calls schedulerProcessReturn before returning to its Go
// caller. All three are declared per-GOARCH: proc_riscv64.go links them
// to switch_riscv64.s's real stack-switch code (storage for the saved
// words lives in the assembly, not the Go heap, since dispatchResumePoint
// is reached via mret on the task's stack and must read kernelSavedSP
// before any Go code is safe to call); proc_other.go gives `go test`
// a host-safe stand-in on any other GOARCH.

// dispatchHook lets tests exercise runPID/schedulerMain's control flow
// without real hardware, following gopheros/kernel/sync/spinlock_test.go's
// pattern of substituting a package-level function variable (there,
// yieldFn = runtime.Gosched; here, dispatchHook). Production code never
// reassigns it.
var dispatchHook = dispatchTask

func findFreeSlot() int {
	for i := range procTable {
		if procTable[i].state == Free {
			return i
		}
	}
	return -1
}

func findSlotByPID(pid int) int {
	if pid == 0 {
		return -1
	}
	for i := range procTable {
		if procTable[i].pid == pid && procTable[i].state != Free {
			return i
		}
	}
	return -1
}

func alignDown16(n uintptr) uintptr {
	return n &^ 15
}

// current returns the pid of the task presently being dispatched, or -1
// if none.
func current() int {
	if currentSlot < 0 {
		return -1
	}
	return procTable[currentSlot].pid
}

// schedulerInit zeroes both tables and resets PID assignment. Idempotent,
// no failure modes, the same shape as xv6's procinit() minus the
// page-table bookkeeping this core has no use for.
func schedulerInit() {
	for i := range procTable {
		procTable[i] = Task{blockedSemID: -1, nextBlocked: -1}
	}
	nextPID = 1
	currentSlot = -1
	semInit()
}

// create allocates a task running entry on a freshly bump-allocated stack.
// The slot is not consumed if allocation fails.
func create(entry uintptr, name string, stackSize uint32) (int, error) {
	idx := findFreeSlot()
	if idx < 0 {
		return -1, errs.ErrTableFull
	}
	if stackSize == 0 {
		stackSize = DefaultStackSize
	}
	stackBase := kmalloc(uintptr(stackSize))
	if stackBase == 0 {
		return -1, errs.ErrOutOfMemory
	}

	t := &procTable[idx]
	t.pid = nextPID
	nextPID++
	setName(&t.name, name)
	t.entry = entry
	t.stackBase = stackBase
	t.stackSize = uintptr(stackSize)
	t.stackTop = alignDown16(stackBase + uintptr(stackSize))
	t.state = Ready
	t.blockedSemID = -1
	t.nextBlocked = -1
	return t.pid, nil
}

// createFromBinary copies image into a fresh code buffer and creates a
// task entering at the buffer's base. image is assumed position-
// independent and self-contained, issuing ecalls with a7 set to a
// supported syscall number.
func createFromBinary(image []byte, name string, stackSize uint32) (int, error) {
	if findFreeSlot() < 0 {
		return -1, errs.ErrTableFull
	}
	codeSize := (uintptr(len(image)) + 15) &^ 15
	codeBase := kmalloc(codeSize)
	if codeBase == 0 {
		return -1, errs.ErrOutOfMemory
	}
	dst := unsafeBytesAt(codeBase, len(image))
	copy(dst, image)

	return create(codeBase, name, stackSize)
}

// runPID synchronously dispatches pid: the call returns once the task has
// either been reaped (exited) or yielded/blocked back to the scheduler.
func runPID(pid int) error {
	idx := findSlotByPID(pid)
	if idx < 0 {
		return errs.ErrNotFound
	}
	t := &procTable[idx]
	currentSlot = idx
	if t.state == Zombie {
		// Already terminated: reap it without running it again.
		schedulerProcessReturn()
		return nil
	}
	t.state = Running
	dispatchHook(t.stackTop, t.entry)
	return nil
}

// schedulerProcessReturn is the post-dispatch routine, called by its
// ordinary mangled Go symbol name (·schedulerProcessReturn) from
// switch_riscv64.s only after the kernel stack pointer has been restored
// from kernelSavedSP, so it runs as ordinary, safe Go code. A task still
// Running here returned from entry without a syscall (a natural exit) and
// is marked Zombie. It frees the current slot if the task exited and always
// clears currentSlot.
func schedulerProcessReturn() {
	fenceRW()
	if currentSlot >= 0 && procTable[currentSlot].state == Running {
		procTable[currentSlot].state = Zombie
	}
	if currentSlot >= 0 && procTable[currentSlot].state == Zombie {
		freeSlot(currentSlot)
	}
	currentSlot = -1
}

func freeSlot(idx int) {
	procTable[idx] = Task{blockedSemID: -1, nextBlocked: -1}
}

// terminate marks pid Zombie; reaping happens on its next (or current)
// dispatch return.
func terminate(pid int) error {
	idx := findSlotByPID(pid)
	if idx < 0 {
		return errs.ErrNotFound
	}
	procTable[idx].state = Zombie
	return nil
}

// findNextReady scans the table circularly from startIdx, favoring a
// Running slot (a task left mid-run by a trap) before a Ready one, and
// skipping BlockedSem/Zombie/Free. Returns -1 if nothing is runnable.
func findNextReady(startIdx int) int {
	for _, want := range [...]TaskState{Running, Ready} {
		for i := 0; i < MaxProcs; i++ {
			idx := (startIdx + i) % MaxProcs
			t := &procTable[idx]
			if t.pid != 0 && t.state == want {
				return idx
			}
		}
	}
	return -1
}

func schedulerProcCount() int {
	n := 0
	for i := range procTable {
		if procTable[i].pid != 0 {
			n++
		}
	}
	return n
}

// schedulerProcessTable returns a snapshot of every live task, used by the
// shell's ps command.
func schedulerProcessTable() []Task {
	out := make([]Task, 0, MaxProcs)
	for i := range procTable {
		if procTable[i].pid != 0 {
			out = append(out, procTable[i])
		}
	}
	return out
}

// schedulerMain is the top-level scheduling loop. If no task exists yet it
// creates the shell, then repeatedly dispatches the next runnable task,
// idling with wfi when nothing is runnable.
func schedulerMain() {
	if schedulerProcCount() == 0 {
		if _, err := create(shellEntryAddr(), "shell", DefaultStackSize); err != nil {
			panic("schedulerMain: create shell: " + err.Error())
		}
	}

	searchFrom := 0
	for {
		idx := findNextReady(searchFrom)
		if idx < 0 {
			wfi()
			searchFrom = 0
			continue
		}
		pid := procTable[idx].pid
		searchFrom = (idx + 1) % MaxProcs
		runPID(pid)
	}
}
