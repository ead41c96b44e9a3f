//go:build riscv64

package main

import "unsafe"

const (
	uartOffsetData   = 0
	uartOffsetLSR    = 5
	uartLSRDataReady = 0x01
)

func uartReg(offset uintptr) *byte {
	return (*byte)(unsafe.Pointer(UART0 + offset))
}

func putchar(c byte) {
	*uartReg(uartOffsetData) = c
}

func getchar() byte {
	for *uartReg(uartOffsetLSR)&uartLSRDataReady == 0 {
	}
	return *uartReg(uartOffsetData)
}
