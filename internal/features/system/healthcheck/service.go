package system_healthcheck

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sync/singleflight"
)

type SystemStats struct {
	MemoryTotalMb     uint64  `json:"memoryTotalMb"`
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	DiskTotalMb       uint64  `json:"diskTotalMb"`
	DiskUsedPercent   float64 `json:"diskUsedPercent"`
}

type HealthcheckService struct {
	singleflight singleflight.Group // Prevents thundering herd on stat collection
}

// GetSystemStats collects memory and disk usage. Concurrent callers share
// a single collection via singleflight.
func (s *HealthcheckService) GetSystemStats() (*SystemStats, error) {
	result, err, _ := s.singleflight.Do("system-stats", func() (any, error) {
		return collectStats()
	})
	if err != nil {
		return nil, err
	}

	stats, ok := result.(*SystemStats)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to SystemStats")
	}

	return stats, nil
}

func collectStats() (*SystemStats, error) {
	memory, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	diskUsage, err := disk.Usage("/")
	if err != nil {
		return nil, fmt.Errorf("failed to read disk stats: %w", err)
	}

	return &SystemStats{
		MemoryTotalMb:     memory.Total / 1024 / 1024,
		MemoryUsedPercent: memory.UsedPercent,
		DiskTotalMb:       diskUsage.Total / 1024 / 1024,
		DiskUsedPercent:   diskUsage.UsedPercent,
	}, nil
}
