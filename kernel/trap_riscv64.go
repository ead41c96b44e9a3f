//go:build riscv64

package main

import _ "unsafe"

//go:linkname trapinithart trapinithart
func trapinithart()
