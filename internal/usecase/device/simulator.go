package device

import (
	"context"
	"math/rand"
	"time"

	domainDevice "bioacoustic-monitor/internal/domain/device"
	"bioacoustic-monitor/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ScenarioForceOnline     = "force_online"
	ScenarioCriticalFailure = "critical_failure"
	ScenarioTotalOutage     = "total_outage"

	criticalFailureCount = 2
)

// ForceSiteOnline marks every device of the site online with a fresh heartbeat.
func (s *Service) ForceSiteOnline(ctx context.Context, siteID uuid.UUID) (*SimulationResponse, error) {
	ids, err := s.siteDeviceIDs(ctx, siteID)
	if err != nil {
		return nil, err
	}
	return s.simulate(ctx, siteID, ScenarioForceOnline, ids, domainDevice.StatusOnline, s.now())
}

// SimulateCriticalFailure takes up to two random devices offline with a
// heartbeat an hour old.
func (s *Service) SimulateCriticalFailure(ctx context.Context, siteID uuid.UUID) (*SimulationResponse, error) {
	ids, err := s.siteDeviceIDs(ctx, siteID)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if len(ids) > criticalFailureCount {
		ids = ids[:criticalFailureCount]
	}
	return s.simulate(ctx, siteID, ScenarioCriticalFailure, ids, domainDevice.StatusOffline, s.now().Add(-time.Hour))
}

func (s *Service) SimulateTotalOutage(ctx context.Context, siteID uuid.UUID) (*SimulationResponse, error) {
	ids, err := s.siteDeviceIDs(ctx, siteID)
	if err != nil {
		return nil, err
	}
	return s.simulate(ctx, siteID, ScenarioTotalOutage, ids, domainDevice.StatusOffline, s.now().Add(-24*time.Hour))
}

func (s *Service) siteDeviceIDs(ctx context.Context, siteID uuid.UUID) ([]uuid.UUID, error) {
	devices, err := s.deviceRepo.ListBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, domainDevice.ErrSiteHasNoDevices
	}

	ids := make([]uuid.UUID, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
	}
	return ids, nil
}

func (s *Service) simulate(ctx context.Context, siteID uuid.UUID, scenario string, ids []uuid.UUID, status domainDevice.DeviceStatus, heartbeat time.Time) (*SimulationResponse, error) {
	if err := s.deviceRepo.SetLiveness(ctx, ids, status, heartbeat); err != nil {
		return nil, err
	}

	logger.Info("Simulation applied",
		zap.String("site_id", siteID.String()),
		zap.String("scenario", scenario),
		zap.Int("affected", len(ids)),
	)
	s.notify(ctx)

	return &SimulationResponse{SiteID: siteID, Scenario: scenario, Affected: len(ids)}, nil
}
