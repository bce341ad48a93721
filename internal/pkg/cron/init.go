package cron

import log "log/slog"

// InitCron 注册并启动定时任务，目前只有孤儿媒体清理一项
func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	return nil
}
