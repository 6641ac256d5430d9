package jit

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// entryFunc is the native ABI the generated code exposes: one argument,
// the tape base pointer, in x0; returns void.
type entryFunc func(tapeBase uintptr)

// UnixLoader is the real Loader, grounded on the mmap/mprotect/munmap
// sequence used to JIT-load machine code and the uintptr-to-function-
// value cast used to invoke it directly, in process.
type UnixLoader struct{}

// NewUnixLoader returns the production Loader.
func NewUnixLoader() *UnixLoader {
	return &UnixLoader{}
}

// Run maps an anonymous private region sized exactly to len(code),
// copies the code in, transitions the region from read+write to
// read+execute, invokes it with tape's address, and unmaps it. Map,
// protect, and unmap failures are all fatal per spec.md §7; this
// surfaces them as an error for the caller to report and exit on
// rather than calling os.Exit itself.
func (l *UnixLoader) Run(code []byte, tape []byte) error {
	if len(tape) == 0 {
		return fmt.Errorf("jit: tape must not be empty")
	}

	mem, err := unix.Mmap(-1, 0, len(code), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return fmt.Errorf("jit: mmap failed: %w", err)
	}

	copy(mem, code)

	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		_ = unix.Munmap(mem)
		return fmt.Errorf("jit: mprotect failed: %w", err)
	}

	// No explicit instruction-cache flush here: on the Mach-style target
	// this spec is written for, the kernel's write->execute protection
	// transition is relied upon for coherence (spec.md §4.3/§9).
	codePtr := uintptr(unsafe.Pointer(&mem[0]))
	fn := *(*entryFunc)(unsafe.Pointer(&codePtr))
	fn(uintptr(unsafe.Pointer(&tape[0])))

	if err := unix.Munmap(mem); err != nil {
		return fmt.Errorf("jit: munmap failed: %w", err)
	}
	return nil
}
