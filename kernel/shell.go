package main

import (
	"strconv"
	"strings"
)

// Interactive shell: a raw getchar line editor plus a command dispatch
// table, ported nearly verbatim in control flow from
// original_source/shell.cpp's shell_main/handle_command, translated to a
// Go map[string]func(args string) dispatch table in place of the null-
// terminated C array of {name, func} pairs.

// shellEntryAddr returns the address dispatchTask should jump to for the
// shell task. shellMain is an ordinary Go function; shellTrampoline (in
// switch_riscv64.s) is a tiny asm stub whose only job is to call it and
// then ret, giving shellMain a callable address the same way an embedded
// binary's raw machine code has one. Declared per-GOARCH in
// shell_riscv64.go/shell_other.go.

var cwdIdx = rootDirIdx

type command struct {
	run func(args string)
}

var commandTable map[string]command

func initCommandTable() {
	commandTable = map[string]command{
		"help":   {cmdHelp},
		"echo":   {cmdEcho},
		"clear":  {cmdClear},
		"mkdir":  {cmdMkdir},
		"rmdir":  {cmdRmdir},
		"ls":     {cmdLs},
		"touch":  {cmdTouch},
		"rm":     {cmdRm},
		"mv":     {cmdMv},
		"cd":     {cmdCd},
		"df":     {cmdDf},
		"pwd":    {cmdPwd},
		"ps":     {cmdPs},
		"cat":    {cmdCat},
		"edit":   {cmdEdit},
		"append": {cmdAppend},
		"run":    {cmdRun},
		"demo":   {cmdDemo},
		"exit":   {cmdExit},
	}
}

// shellMain is called from switch_riscv64.s's shellTrampoline by its
// ordinary mangled Go symbol name (·shellMain).
func shellMain() {
	initCommandTable()
	cwdIdx = rootDirIdx

	var line [128]byte
	for {
		printStr("(shell) user [")
		printStr(cwdPathString())
		printStr("] > ")

		n := readLine(line[:])
		handleCommand(string(line[:n]))
	}
}

// readLine fills buf via raw getchar reads, honoring backspace (0x08,
// 0x7F) and terminating on CR/LF; it does not itself handle Ctrl+D
// (that belongs to cmdEdit's own read loop, which is line-buffered
// differently for file content).
func readLine(buf []byte) int {
	pos := 0
	for {
		c := getchar()
		switch {
		case c == '\r' || c == '\n':
			putchar('\n')
			return pos
		case c == 0x08 || c == 0x7F:
			if pos > 0 {
				pos--
				printStr("\b \b")
			}
		case c == 0x1B: // ESC: swallow an arrow-key sequence
			getchar()
			getchar()
		default:
			if pos < len(buf) {
				buf[pos] = c
				pos++
				putchar(c)
			}
		}
	}
}

func handleCommand(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	name, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	cmd, ok := commandTable[name]
	if !ok {
		printStr("Unknown command: ")
		printStr(name)
		printStr("\n")
		return
	}
	cmd.run(args)
}

func cwdPathString() string {
	if cwdIdx == rootDirIdx {
		return "/"
	}
	var parts []string
	for idx := cwdIdx; idx != rootDirIdx && idx != -1; idx = dirPool[idx].parent {
		parts = append([]string{dirPool[idx].Name()}, parts...)
	}
	return "/" + strings.Join(parts, "/")
}

func cmdEcho(args string) {
	printStr(args)
	printStr("\n")
}

func cmdClear(args string) {
	printStr("\x1b[2J\x1b[H")
}

func cmdMkdir(args string) {
	if args == "" {
		printStr("Usage: mkdir <path>\n")
		return
	}
	if _, err := mkdirRecursive(cwdIdx, args); err != nil {
		printStr("Failed to create directory.\n")
		return
	}
	printStr("Directory created.\n")
}

func cmdRmdir(args string) {
	if err := rmdir(cwdIdx, args); err != nil {
		printStr("Failed to remove directory (not empty or does not exist).\n")
		return
	}
	printStr("Directory removed.\n")
}

func cmdLs(args string) {
	dirIdx := cwdIdx
	if args != "" {
		dirIdx = findSubdirRecursive(cwdIdx, args)
		if dirIdx < 0 {
			printStr("Error: invalid directory\n")
			return
		}
	}
	subdirs, files := lsListing(dirIdx)
	printStr("Directories:\n")
	if len(subdirs) == 0 {
		printStr("  (none)\n")
	}
	for _, s := range subdirs {
		printStr("  " + s + "\n")
	}
	printStr("Files:\n")
	if len(files) == 0 {
		printStr("  (none)\n")
	}
	for _, f := range files {
		printStr("  " + f + "\n")
	}
}

func cmdTouch(args string) {
	parentIdx, base, err := touchRecursive(cwdIdx, args)
	if err != nil {
		printStr("Invalid path.\n")
		return
	}
	if _, err := touch(parentIdx, base); err != nil {
		printStr("Failed to create file.\n")
		return
	}
	printStr("File created.\n")
}

func cmdRm(args string) {
	if err := rm(cwdIdx, args); err != nil {
		printStr("File not found.\n")
		return
	}
	printStr("File removed.\n")
}

func cmdMv(args string) {
	src, dest, ok := strings.Cut(args, " ")
	if !ok {
		printStr("Usage: mv <src> <dest>\n")
		return
	}
	dest = strings.TrimSpace(dest)
	src = strings.TrimPrefix(src, "./")

	destIdx := cwdIdx
	if dest != "" {
		destIdx = findSubdirRecursive(cwdIdx, dest)
	}
	if destIdx < 0 {
		printStr("Move failed: invalid destination\n")
		return
	}
	if err := mv(cwdIdx, src, destIdx); err != nil {
		printStr("Move failed.\n")
		return
	}
	printStr("Moved successfully.\n")
}

func cmdCd(args string) {
	if args == "" {
		return
	}
	dirIdx := cwdIdx
	if strings.HasPrefix(args, "/") {
		dirIdx = rootDirIdx
		args = args[1:]
	}
	for _, comp := range strings.Split(args, "/") {
		if comp == "" {
			continue
		}
		if comp == ".." {
			if dirPool[dirIdx].parent != -1 {
				dirIdx = dirPool[dirIdx].parent
			}
			continue
		}
		next := findSubdir(dirIdx, comp)
		if next < 0 {
			printStr("Error: directory not found\n")
			return
		}
		dirIdx = next
	}
	cwdIdx = dirIdx
}

func cmdPwd(args string) {
	printStr(cwdPathString())
	printStr("\n")
}

func cmdPs(args string) {
	printStr("PID\tName\t\tState\n")
	printStr("-------------------------------\n")
	for _, t := range schedulerProcessTable() {
		printInt(t.pid)
		printStr("\t")
		name := t.Name()
		printStr(name)
		if len(name) < 8 {
			printStr("\t\t")
		} else {
			printStr("\t")
		}
		printStr(strings.ToUpper(t.state.String()))
		printStr("\n")
	}
}

func cmdCat(args string) {
	if args == "" {
		printStr("Usage: cat <filename>\n")
		return
	}
	idx := findFile(cwdIdx, args)
	if idx < 0 {
		printStr("File not found\n")
		return
	}
	f := &filePool[idx]
	for i := 0; i < f.size; i++ {
		putchar(f.data[i])
	}
	putchar('\n')
}

func cmdEdit(args string)   { runEdit(args, false) }
func cmdAppend(args string) { runEdit(args, true) }

func runEdit(args string, appendMode bool) {
	if args == "" {
		printStr("Usage: edit|append <filename>\n")
		return
	}
	idx := findFile(cwdIdx, args)
	if idx < 0 {
		printStr("File not found\n")
		return
	}
	f := &filePool[idx]
	pos := 0
	if appendMode {
		pos = f.size
		printStr("Append mode (Ctrl+D to finish):\n")
	} else {
		printStr("Enter new content (end with Ctrl+D):\n")
	}

	for pos < MaxFileSize {
		c := getchar()
		if c == 4 { // Ctrl+D
			break
		}
		if c == '\r' || c == '\n' {
			putchar('\n')
			f.data[pos] = '\n'
			pos++
		} else {
			putchar(c)
			f.data[pos] = c
			pos++
		}
	}
	f.size = pos
	f.used = true
	printStr("\nFile updated.\n")
}

func cmdDf(args string) {
	usedDirs := countUsedDirs()
	usedFiles := countUsedFiles()
	printStr("Resource\tUsed\tFree\tMax\n")
	printStr("-------------------------------------\n")
	printStr("Directories\t" + strconv.Itoa(usedDirs) + "\t" + strconv.Itoa(MaxDirs-usedDirs) + "\t" + strconv.Itoa(MaxDirs) + "\n")
	printStr("Files\t\t" + strconv.Itoa(usedFiles) + "\t" + strconv.Itoa(MaxFiles-usedFiles) + "\t" + strconv.Itoa(MaxFiles) + "\n\n")
	printStr("Used Space: " + strconv.Itoa(totalFileBytes()/1024) + " KB\n")
	printStr("Total Space: " + strconv.Itoa((MaxFiles*MaxFileSize)/(1024*1024)) + " MB\n")
}

func cmdRun(args string) {
	if args == "" {
		printStr("Usage: run <program.S>\n")
		return
	}
	if dirPool[cwdIdx].Name() != "user_programs" {
		printStr("Error: No user programs were found\n")
		return
	}
	if !strings.HasSuffix(args, ".S") {
		printStr("Error: You must specify an assembly (.S) file\n")
		return
	}
	base := strings.TrimSuffix(args, ".S")

	prog := findEmbeddedProgram(base)
	if prog == nil {
		printStr("Error: Program has no binary or doesn't exist\n")
		return
	}
	pid, err := createFromBinary(prog.Binary, base, DefaultStackSize)
	if err != nil {
		printStr("Error: Failed to create process\n")
		return
	}
	runPID(pid)
}

// cmdDemo pre-creates the two semaphores producer.S/consumer.S hardcode
// (id 1 "full" starting at 0, id 2 "empty" starting at 1) in that order,
// then runs producer then consumer, giving the producer/consumer
// semaphore scenario those two programs exist to exercise a real path to
// run from the shell.
// The ids only come out as 1 and 2 the first time demo runs after boot;
// nothing destroys them, so a second run in the same session creates a
// fresh, higher-numbered pair that producer/consumer's hardcoded ecalls
// won't reach.
func cmdDemo(args string) {
	full := semCreate(0)
	empty := semCreate(1)
	if full != 1 || empty != 2 {
		printStr("Warning: producer/consumer expect semaphore ids 1 and 2; got ")
		printInt(full)
		printStr(" and ")
		printInt(empty)
		printStr(" (run demo only once per boot).\n")
	}

	producer := findEmbeddedProgram("producer")
	consumer := findEmbeddedProgram("consumer")
	if producer == nil || consumer == nil {
		printStr("Error: producer/consumer programs not found\n")
		return
	}

	pPID, err := createFromBinary(producer.Binary, "producer", DefaultStackSize)
	if err != nil {
		printStr("Error: failed to create producer\n")
		return
	}
	cPID, err := createFromBinary(consumer.Binary, "consumer", DefaultStackSize)
	if err != nil {
		printStr("Error: failed to create consumer\n")
		return
	}

	runPID(pPID)
	runPID(cPID)
}

func cmdExit(args string) {
	printStr("To perform a clean exit, use 'Ctrl+A X'.\n")
	printStr("Otherwise, use 'Ctrl+A C' to enter the QEMU monitor, then type 'quit'.\n")
}

func cmdHelp(args string) {
	printStr("Available Commands:\n")
	printStr("  help            Show this help message.\n")
	printStr("  echo <args>     Echo arguments.\n")
	printStr("  clear           Clear the screen.\n")
	printStr("  mkdir <name>    Create a new directory.\n")
	printStr("  rmdir <name>    Remove a directory.\n")
	printStr("  ls [path]       List files and directories.\n")
	printStr("  touch <name>    Create a new file.\n")
	printStr("  rm <name>       Delete a file.\n")
	printStr("  run <name.S>    Run a user program.\n")
	printStr("  demo            Run the producer/consumer semaphore demo.\n")
	printStr("  mv <src> <dst>  Move a file to another directory.\n")
	printStr("  cd <dir>        Change current directory.\n")
	printStr("  df              Display current storage and resources.\n")
	printStr("  pwd             Print current working directory.\n")
	printStr("  ps              Display all currently running processes.\n")
	printStr("  cat <name>      Dump a file's contents to the console.\n")
	printStr("  edit <name>     Overwrite a file's contents.\n")
	printStr("  append <name>   Append to a file's contents.\n")
	printStr("  exit            Advises the user on how to exit the OS.\n")
}
