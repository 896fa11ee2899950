//go:build !linux && !windows

package coreproc

import (
	"os"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
)

func limitMemory(p *os.Process, limit uint64) (func(), error) {
	log.Debugf("Memory limit not supported on this platform, pid %d runs uncapped", p.Pid)
	return func() {}, nil
}
