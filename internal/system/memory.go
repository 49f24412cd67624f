package system

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

// Memory reports resident memory usage of the current process, surfaced
// on the health endpoint.
type Memory struct {
	proc *process.Process
}

// NewMemory creates a reporter bound to the current process.
func NewMemory() (*Memory, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Memory{proc: proc}, nil
}

// RSSBytes returns the process resident set size in bytes.
func (m *Memory) RSSBytes() (uint64, error) {
	info, err := m.proc.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return info.RSS, nil
}
