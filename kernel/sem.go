package main

// Counting semaphores with an LIFO-ordered blocked wait list threaded
// through the task table by slot index, avoiding a second allocation for
// wait-queue nodes. Grounded on the counting-semaphore shape shared by
// this pack's other Go kernels (other_examples' xinu-go semaphore.go:
// SCount--/block-if-negative, SCount++/wake-if-queued) and on the scheduler
// design's own blocked_list head/next.

type Semaphore struct {
	id       int
	value    int
	ownerPID int
	inUse    bool

	blockedHead int // slot index of the most recently blocked waiter, or -1
}

const (
	maxSems = MaxSems
)

var (
	semTable  [maxSems]Semaphore
	nextSemID = 1
)

func semInit() {
	for i := range semTable {
		semTable[i] = Semaphore{blockedHead: -1}
	}
	nextSemID = 1
}

func findFreeSemSlot() int {
	for i := range semTable {
		if !semTable[i].inUse {
			return i
		}
	}
	return -1
}

func semSlotByID(id int) int {
	if id <= 0 {
		return -1
	}
	for i := range semTable {
		if semTable[i].inUse && semTable[i].id == id {
			return i
		}
	}
	return -1
}

// semGet returns the semaphore with the given id, or nil if it does not
// exist or has been destroyed.
func semGet(id int) *Semaphore {
	idx := semSlotByID(id)
	if idx < 0 {
		return nil
	}
	return &semTable[idx]
}

// semCreate allocates a semaphore with the given initial value (which may
// be negative, pre-arming a barrier so the first |initial| signals do not
// wake anyone) and returns its id, or -1 if the table is full.
func semCreate(initial int) int {
	idx := findFreeSemSlot()
	if idx < 0 {
		return -1
	}
	s := &semTable[idx]
	s.id = nextSemID
	nextSemID++
	s.value = initial
	s.ownerPID = current()
	s.inUse = true
	s.blockedHead = -1
	return s.id
}

// semDestroy releases a semaphore's slot. A semaphore with a non-empty
// wait list is never destroyed: it would otherwise abandon blocked tasks
// with no way to wake.
func semDestroy(id int) bool {
	idx := semSlotByID(id)
	if idx < 0 {
		return false
	}
	if semTable[idx].blockedHead != -1 {
		return false
	}
	semTable[idx] = Semaphore{blockedHead: -1}
	return true
}

// semWait decrements the semaphore's value. If the result is negative the
// calling task (identified via currentSlot) is prepended to the wait list
// and its state becomes BlockedSem; the caller must then transfer control
// to the scheduler continuation (the trap handler does this by rewriting
// mepc). Calling semWait outside the trap handler's dispatch of a blocking
// path is not supported, since nothing else arranges that transfer.
func semWait(id int) bool {
	idx := semSlotByID(id)
	if idx < 0 {
		return false
	}
	s := &semTable[idx]
	s.value--
	if s.value < 0 {
		blockCurrentOn(idx)
		return true
	}
	return false
}

// blockCurrentOn threads the currently running task onto semaphore slot
// semIdx's wait list (LIFO: new waiters become the new head) and marks it
// BlockedSem.
func blockCurrentOn(semIdx int) {
	if currentSlot < 0 {
		return
	}
	t := &procTable[currentSlot]
	s := &semTable[semIdx]
	t.state = BlockedSem
	t.blockedSemID = s.id
	t.nextBlocked = s.blockedHead
	s.blockedHead = currentSlot
}

// semSignal increments the semaphore's value. If the post-increment value
// is <= 0 and the wait list is non-empty, the head waiter is popped and
// made Ready. The woken task is not dispatched inline; it becomes eligible
// for the scheduler's next round-robin pass.
func semSignal(id int) {
	idx := semSlotByID(id)
	if idx < 0 {
		return
	}
	s := &semTable[idx]
	s.value++
	if s.value <= 0 && s.blockedHead != -1 {
		wokenIdx := s.blockedHead
		woken := &procTable[wokenIdx]
		s.blockedHead = woken.nextBlocked
		woken.nextBlocked = -1
		woken.blockedSemID = -1
		woken.state = Ready
	}
}

// semWaitListLength reports how many tasks are blocked on id; used by
// tests asserting the invariant relating value to wait-list length.
func semWaitListLength(id int) int {
	idx := semSlotByID(id)
	if idx < 0 {
		return 0
	}
	n := 0
	for i := semTable[idx].blockedHead; i != -1; i = procTable[i].nextBlocked {
		n++
	}
	return n
}
