package workers

import (
	"chat-circle/contract"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker samples the process every interval and hands the stats to the recorder.
type HeartbeatWorker struct {
	log           *slog.Logger
	interval      time.Duration
	recorder      contract.IStatsRecorder
	subscriptions func() int
	goroutines    func() int
}

func NewHeartbeatWorker(log *slog.Logger, interval time.Duration, recorder contract.IStatsRecorder,
	subscriptions, goroutines func() int) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:           log,
		interval:      interval,
		recorder:      recorder,
		subscriptions: subscriptions,
		goroutines:    goroutines,
	}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stats, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			stats.ActiveSubscriptions = w.subscriptions()
			stats.Goroutines = w.goroutines()
			w.recorder.RecordProcess(stats)
		}
	}
}

func selfStats(p *process.Process) (contract.ProcessStats, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return contract.ProcessStats{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return contract.ProcessStats{}, err
	}
	return contract.ProcessStats{RSSBytes: memInfo.RSS, CPUPercent: cpuPercent}, nil
}
