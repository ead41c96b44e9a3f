package main

// Boot sequence. KMain runs a sequential list of init calls each
// bracketed by an "OK"/printed-result line, generalized into
// original_source/kernel.cpp's services[] checklist table, which tests
// each subsystem's own invariant rather than just calling its
// constructor.

type service struct {
	name  string
	check func() bool
}

func serviceMemory() bool {
	start := heapStartAddr()
	end := heapEndAddr()
	if end <= start {
		return false
	}
	p := kmalloc(2)
	if p == 0 {
		return false
	}
	buf := unsafeBytesAt(p, 2)
	buf[0] = 0xAA
	buf[1] = 0x55
	return buf[0] == 0xAA && buf[1] == 0x55
}

func serviceTraps() bool {
	return r_mtvec() != 0
}

func serviceScheduler() bool {
	schedulerInit()
	return true
}

func serviceFilesystem() bool {
	fsInit()
	return true
}

func serviceUserPrograms() bool {
	if len(embeddedPrograms) == 0 {
		return false
	}
	dirIdx, err := mkdirRecursive(rootDirIdx, "user_programs")
	if err != nil {
		return false
	}
	for _, prog := range embeddedPrograms {
		fileIdx, err := touch(dirIdx, prog.Name+".S")
		if err != nil {
			return false
		}
		f := &filePool[fileIdx]
		n := copy(f.data[:], prog.Source)
		f.size = n
		f.used = true
	}
	return true
}

var services = []service{
	{"scheduler", serviceScheduler},
	{"memory", serviceMemory},
	{"traps", serviceTraps},
	{"filesystem", serviceFilesystem},
	{"user programs", serviceUserPrograms},
}

// KMain is called from entry_riscv64.s by its ordinary mangled Go symbol
// name (·KMain); //export has no effect here since this package never
// imports "C".
func KMain() {
	allocInit()
	trapinithart()

	printStr("(kernel) ")
	printStr(currentPrivilegeName())
	printStr(" Active. Starting RISC-V minikernel...\n")

	printStr("(kernel) Initializing services:\n")
	printStr("  - console........ OK\n")
	for _, svc := range services {
		printStr("  - ")
		printStr(svc.name)
		printStr("........ ")
		if svc.check() {
			printStr("OK\n")
		} else {
			printStr("FAIL\n")
		}
	}

	printStr("\n(kernel) System ready. Starting scheduler...\n")
	printStr("================================\n\n")

	schedulerMain()

	for {
		wfi()
	}
}

func main() {}
