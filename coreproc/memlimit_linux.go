package coreproc

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// limitMemory caps the child's address space with RLIMIT_AS
func limitMemory(p *os.Process, limit uint64) (func(), error) {
	rl := unix.Rlimit{Cur: limit, Max: limit}
	if err := unix.Prlimit(p.Pid, unix.RLIMIT_AS, &rl, nil); err != nil {
		return nil, fmt.Errorf("prlimit pid %d: %w", p.Pid, err)
	}
	return func() {}, nil
}
