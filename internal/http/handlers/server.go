package handlers

import (
	"github.com/rogerio-castellano/uniform-analytics/internal/dashboard"
	"github.com/rogerio-castellano/uniform-analytics/internal/logger"
	repo "github.com/rogerio-castellano/uniform-analytics/internal/repo"
)

var (
	orderRepo  repo.OrderRepository
	batchRepo  repo.BatchRepository
	schoolRepo repo.SchoolRepository

	dashboardSvc *dashboard.Service
	appLog       = logger.Nop()
)

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetBatchRepo(r repo.BatchRepository) {
	batchRepo = r
}

func SetSchoolRepo(r repo.SchoolRepository) {
	schoolRepo = r
}

func SetDashboardService(s *dashboard.Service) {
	dashboardSvc = s
}

func SetLogger(l *logger.Logger) {
	if l == nil {
		l = logger.Nop()
	}
	appLog = l
}
