//go:build riscv64

package main

import _ "unsafe"

//go:external kernelSavedSP
var kernelSavedSP uintptr

//go:external kernelResumePC
var kernelResumePC uintptr

//go:linkname dispatchTask dispatchTask
func dispatchTask(stackTop, entry uintptr)
