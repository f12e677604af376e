package site

import (
	"context"
	"time"

	"bioacoustic-monitor/internal/authz"
	domainDevice "bioacoustic-monitor/internal/domain/device"
	domainSite "bioacoustic-monitor/internal/domain/site"
	"bioacoustic-monitor/internal/fleet"
	"bioacoustic-monitor/internal/logger"
	usecaseDevice "bioacoustic-monitor/internal/usecase/device"
	appErrors "bioacoustic-monitor/pkg/errors"
	"bioacoustic-monitor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the site hierarchy editor and the site detail view.
type Service struct {
	siteRepo     domainSite.Repository
	buildingRepo domainSite.BuildingRepository
	roomRepo     domainSite.RoomRepository
	deviceRepo   domainDevice.Repository
}

func NewService(siteRepo domainSite.Repository, buildingRepo domainSite.BuildingRepository, roomRepo domainSite.RoomRepository, deviceRepo domainDevice.Repository) *Service {
	return &Service{
		siteRepo:     siteRepo,
		buildingRepo: buildingRepo,
		roomRepo:     roomRepo,
		deviceRepo:   deviceRepo,
	}
}

func (s *Service) GetSite(ctx context.Context, siteID uuid.UUID) (*SiteResponse, error) {
	if err := authz.RequireSite(ctx, siteID); err != nil {
		return nil, err
	}
	site, err := s.siteRepo.GetByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	return ToSiteResponse(site), nil
}

// ListSites returns the sites visible to the caller. A principal bound to a
// single site only sees that one.
func (s *Service) ListSites(ctx context.Context, req *SiteFilterRequest) ([]SiteResponse, error) {
	if p, ok := authz.FromContext(ctx); ok && p.AssignedSiteID != nil {
		site, err := s.siteRepo.GetByID(ctx, *p.AssignedSiteID)
		if err != nil {
			return nil, err
		}
		return []SiteResponse{*ToSiteResponse(site)}, nil
	}

	sites, err := s.siteRepo.List(ctx, &domainSite.Filter{
		OrganizationID: req.OrganizationID,
		ActiveOnly:     req.ActiveOnly,
	})
	if err != nil {
		return nil, err
	}

	out := make([]SiteResponse, len(sites))
	for i, site := range sites {
		out[i] = *ToSiteResponse(site)
	}
	return out, nil
}

func (s *Service) UpdateSite(ctx context.Context, siteID uuid.UUID, req *UpdateSiteRequest) (*SiteResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}
	if err := authz.RequireSite(ctx, siteID); err != nil {
		return nil, err
	}

	site, err := s.siteRepo.GetByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		site.Name = utils.SanitizeString(*req.Name)
	}
	if req.Location != nil {
		site.Location = req.Location
	}
	if req.Active != nil {
		site.Active = *req.Active
	}

	if err := s.siteRepo.Update(ctx, site); err != nil {
		return nil, err
	}

	logger.Info("Site updated",
		zap.String("site_id", site.ID.String()),
		zap.Bool("active", site.Active),
		zap.String("event", "site_updated"),
	)
	return ToSiteResponse(site), nil
}

// GetSiteDetail assembles the building, room and device tree of a site from
// three batched reads.
func (s *Service) GetSiteDetail(ctx context.Context, siteID uuid.UUID, now time.Time) (*SiteDetailResponse, error) {
	if err := authz.RequireSite(ctx, siteID); err != nil {
		return nil, err
	}
	site, err := s.siteRepo.GetByID(ctx, siteID)
	if err != nil {
		return nil, err
	}

	buildings, err := s.buildingRepo.ListBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	buildingIDs := make([]uuid.UUID, len(buildings))
	for i, b := range buildings {
		buildingIDs[i] = b.ID
	}
	rooms, err := s.roomRepo.ListByBuildings(ctx, buildingIDs)
	if err != nil {
		return nil, err
	}

	roomIDs := make([]uuid.UUID, len(rooms))
	roomsByBuilding := make(map[uuid.UUID][]*domainSite.Room, len(buildings))
	for i, r := range rooms {
		roomIDs[i] = r.ID
		roomsByBuilding[r.BuildingID] = append(roomsByBuilding[r.BuildingID], r)
	}
	devices, err := s.deviceRepo.ListByRooms(ctx, roomIDs)
	if err != nil {
		return nil, err
	}

	devicesByRoom := make(map[uuid.UUID][]*domainDevice.Device, len(rooms))
	for _, d := range devices {
		if d.RoomID != nil {
			devicesByRoom[*d.RoomID] = append(devicesByRoom[*d.RoomID], d)
		}
	}

	resp := &SiteDetailResponse{
		SiteResponse: *ToSiteResponse(site),
		Health:       toHealthResponse(fleet.AggregateHealth(devices, now)),
		Buildings:    make([]BuildingNode, 0, len(buildings)),
	}
	for _, b := range buildings {
		node := BuildingNode{
			BuildingResponse: *ToBuildingResponse(b),
			Rooms:            make([]RoomNode, 0, len(roomsByBuilding[b.ID])),
		}
		for _, r := range roomsByBuilding[b.ID] {
			roomDevices := devicesByRoom[r.ID]
			if fleet.HasOffline(roomDevices, now) {
				node.HasOfflineDevices = true
			}

			deviceNodes := make([]usecaseDevice.DeviceResponse, len(roomDevices))
			for i, d := range roomDevices {
				deviceNodes[i] = *usecaseDevice.ToDeviceResponse(d, now)
			}
			node.Rooms = append(node.Rooms, RoomNode{
				RoomResponse: *ToRoomResponse(r),
				Devices:      deviceNodes,
			})
		}
		resp.Buildings = append(resp.Buildings, node)
	}

	return resp, nil
}
