package services

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const systemInformation = "Microsoft Windows 3.1 Simulation\nCPU: 486DX\nRAM: 8MB\nGraphics: VGA"

// PerformanceSample is a cosmetic reading. Nothing is measured.
type PerformanceSample struct {
	CPUPercent int
	MemoryMB   int
}

// SystemReporter produces the Control Panel's performance and information texts.
type SystemReporter struct {
	rng *rand.Rand
}

func NewSystemReporter(rng *rand.Rand) *SystemReporter {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &SystemReporter{rng: rng}
}

// Performance draws CPU usage from [1,100] and memory usage from [100,8000].
func (s *SystemReporter) Performance() PerformanceSample {
	return PerformanceSample{
		CPUPercent: 1 + s.rng.IntN(100),
		MemoryMB:   100 + s.rng.IntN(7901),
	}
}

func (s *SystemReporter) PerformanceText() string {
	sample := s.Performance()
	return fmt.Sprintf("CPU Usage: %d%%\nMemory Usage: %d MB", sample.CPUPercent, sample.MemoryMB)
}

func (s *SystemReporter) SystemInfoText() string {
	return systemInformation
}
