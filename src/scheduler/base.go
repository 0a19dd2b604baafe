package scheduler

import (
	"context"

	"advisory-server/src/services"
	"advisory-server/src/utils"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type ScheduledTask struct {
	cronID cron.EntryID
	cron   *cron.Cron
	cancel chan struct{}
}

func NewScheduledTask(cronSpec string, taskFunc func()) (*ScheduledTask, error) {
	c := cron.New()
	cancel := make(chan struct{})
	task := &ScheduledTask{
		cron:   c,
		cancel: cancel,
	}

	id, err := c.AddFunc(cronSpec, func() {
		select {
		case <-cancel:
			return
		default:
			taskFunc()
		}
	})
	if err != nil {
		return nil, err
	}

	task.cronID = id
	c.Start()
	return task, nil
}

func (s *ScheduledTask) Cancel() {
	s.cron.Remove(s.cronID)
	close(s.cancel)
}

// NewSnapshotTask schedules periodic regeneration of portfolio snapshots
// for every client.
func NewSnapshotTask(cronSpec string, snapshotService services.SnapshotServiceI, logger *logrus.Logger) (*ScheduledTask, error) {
	return NewScheduledTask(cronSpec, func() {
		ctx := utils.WithLogger(context.Background(), logger)
		if err := snapshotService.RegenerateAll(ctx); err != nil {
			logger.Errorf("snapshot regeneration run failed: %v", err)
		}
	})
}
