//go:build !riscv64

package main

var (
	kernelSavedSP  uintptr
	kernelResumePC uintptr
)

// dispatchTask has no native stack-switch outside riscv64. Every test
// substitutes dispatchHook (see proc_test.go's withFakeDispatch) before
// anything would reach this; it panics rather than silently no-op so an
// accidental real call is loud.
func dispatchTask(stackTop, entry uintptr) {
	panic("dispatchTask: no native stack-switch on this GOARCH; substitute dispatchHook")
}
