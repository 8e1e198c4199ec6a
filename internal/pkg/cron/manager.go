package cron

import (
	"Viewy/internal/api/config"
	"Viewy/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	spec          config.CronConfig
	qpRefreshJob  *job.QPRefreshJob
	hotHashtagJob *job.HotHashtagJob
}

func NewCronManager(spec config.CronConfig, qpRefreshJob *job.QPRefreshJob, hotHashtagJob *job.HotHashtagJob) *Manager {
	return &Manager{
		engine:        cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		spec:          spec,
		qpRefreshJob:  qpRefreshJob,
		hotHashtagJob: hotHashtagJob,
	}
}

// RegisterJobs QP drain and hot hashtag refresh
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.spec.QPRefresh, s.qpRefreshJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(s.spec.HotHashtag, s.hotHashtagJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started", "jobs", len(s.engine.Entries()))
	s.engine.Start()
}

// Stop waits for running jobs
func (s *Manager) Stop() {
	<-s.engine.Stop().Done()
	log.Info("Cron engine stopped")
}
