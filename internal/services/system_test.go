package services

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceWithinRanges(t *testing.T) {
	reporter := NewSystemReporter(rand.New(rand.NewPCG(1, 2)))

	for i := 0; i < 5000; i++ {
		sample := reporter.Performance()
		assert.GreaterOrEqual(t, sample.CPUPercent, 1)
		assert.LessOrEqual(t, sample.CPUPercent, 100)
		assert.GreaterOrEqual(t, sample.MemoryMB, 100)
		assert.LessOrEqual(t, sample.MemoryMB, 8000)
	}
}

func TestPerformanceText(t *testing.T) {
	reporter := NewSystemReporter(nil)
	pattern := regexp.MustCompile(`^CPU Usage: (\d+)%\nMemory Usage: (\d+) MB$`)

	m := pattern.FindStringSubmatch(reporter.PerformanceText())
	require.Len(t, m, 3)

	cpu, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	assert.True(t, cpu >= 1 && cpu <= 100)
}

func TestSystemInfoTextIsStatic(t *testing.T) {
	reporter := NewSystemReporter(nil)
	assert.Equal(t, "Microsoft Windows 3.1 Simulation\nCPU: 486DX\nRAM: 8MB\nGraphics: VGA", reporter.SystemInfoText())
	assert.Equal(t, reporter.SystemInfoText(), reporter.SystemInfoText())
}
