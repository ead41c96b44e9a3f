package main

import "testing"

// Exercises the scheduler's pure Go control flow by substituting
// dispatchHook for the real assembly primitive, following
// gopheros/kernel/sync/spinlock_test.go's yieldFn-substitution pattern.

func fakeDispatch(terminal bool) func(stackTop, entry uintptr) {
	return func(stackTop, entry uintptr) {
		if terminal && currentSlot >= 0 {
			procTable[currentSlot].state = Zombie
		}
		schedulerProcessReturn()
	}
}

func withFakeDispatch(t *testing.T, terminal bool) {
	t.Helper()
	orig := dispatchHook
	dispatchHook = fakeDispatch(terminal)
	t.Cleanup(func() { dispatchHook = orig })
}

func TestSchedulerInitResetsTable(t *testing.T) {
	schedulerInit()
	if schedulerProcCount() != 0 {
		t.Fatalf("expected empty table after schedulerInit, got %d", schedulerProcCount())
	}
	if current() != -1 {
		t.Fatalf("expected current() == -1, got %d", current())
	}
}

func TestCreateAssignsMonotonicPIDs(t *testing.T) {
	schedulerInit()
	pid1, err := create(0x1000, "a", 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	pid2, err := create(0x1000, "b", 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if pid2 <= pid1 {
		t.Fatalf("expected strictly increasing pids, got %d then %d", pid1, pid2)
	}
}

func TestCreateRoundsStackTopTo16Bytes(t *testing.T) {
	schedulerInit()
	pid, err := create(0x1000, "a", 100)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	idx := findSlotByPID(pid)
	if procTable[idx].stackTop%16 != 0 {
		t.Fatalf("stackTop %#x not 16-byte aligned", procTable[idx].stackTop)
	}
}

func TestCreate17thTaskFailsWithoutMutatingTable(t *testing.T) {
	schedulerInit()
	for i := 0; i < MaxProcs; i++ {
		if _, err := create(0x1000, "t", 0); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	before := schedulerProcCount()
	if _, err := create(0x1000, "overflow", 0); err == nil {
		t.Fatalf("expected 17th create to fail")
	}
	if schedulerProcCount() != before {
		t.Fatalf("table mutated on failed create: before=%d after=%d", before, schedulerProcCount())
	}
}

func TestRunPIDNaturalExitReapsZombie(t *testing.T) {
	schedulerInit()
	withFakeDispatch(t, true)

	pid, err := create(0x1000, "done", 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := runPID(pid); err != nil {
		t.Fatalf("runPID: %v", err)
	}
	if current() != -1 {
		t.Fatalf("expected current() == -1 after dispatch, got %d", current())
	}
	if findSlotByPID(pid) >= 0 {
		t.Fatalf("expected pid %d to be reaped", pid)
	}
}

func TestCreateTerminateReapRoundTrip(t *testing.T) {
	schedulerInit()
	withFakeDispatch(t, false)

	before := schedulerProcCount()
	pid, err := create(0x1000, "rt", 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := terminate(pid); err != nil {
		t.Fatalf("terminate: %v", err)
	}
	if err := runPID(pid); err != nil {
		t.Fatalf("runPID: %v", err)
	}
	if schedulerProcCount() != before {
		t.Fatalf("round trip left table at %d procs, want %d", schedulerProcCount(), before)
	}
}

func TestFindNextReadyPrefersRunningOverReady(t *testing.T) {
	schedulerInit()
	readyPID, _ := create(0x1000, "ready", 0)
	runningPID, _ := create(0x1000, "running", 0)

	procTable[findSlotByPID(runningPID)].state = Running
	procTable[findSlotByPID(readyPID)].state = Ready

	idx := findNextReady(0)
	if idx < 0 || procTable[idx].pid != runningPID {
		t.Fatalf("expected Running task to be preferred, got idx %d", idx)
	}
}

func TestFindNextReadySkipsBlockedAndZombie(t *testing.T) {
	schedulerInit()
	blockedPID, _ := create(0x1000, "blocked", 0)
	zombiePID, _ := create(0x1000, "zombie", 0)
	readyPID, _ := create(0x1000, "ready", 0)

	procTable[findSlotByPID(blockedPID)].state = BlockedSem
	procTable[findSlotByPID(zombiePID)].state = Zombie
	procTable[findSlotByPID(readyPID)].state = Ready

	idx := findNextReady(0)
	if idx < 0 || procTable[idx].pid != readyPID {
		t.Fatalf("expected only the Ready task to be selected, got idx %d", idx)
	}
}

func TestFreeSlotInvariant(t *testing.T) {
	schedulerInit()
	for i := range procTable {
		if procTable[i].state == Free && procTable[i].pid != 0 {
			t.Fatalf("slot %d is Free but pid=%d", i, procTable[i].pid)
		}
	}
}
