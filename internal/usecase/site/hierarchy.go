package site

import (
	"context"

	"bioacoustic-monitor/internal/authz"
	domainSite "bioacoustic-monitor/internal/domain/site"
	"bioacoustic-monitor/internal/logger"
	appErrors "bioacoustic-monitor/pkg/errors"
	"bioacoustic-monitor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *Service) CreateBuilding(ctx context.Context, siteID uuid.UUID, req *CreateBuildingRequest) (*BuildingResponse, error) {
	req.Name = utils.SanitizeString(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	if err := authz.RequireSite(ctx, siteID); err != nil {
		return nil, err
	}
	if _, err := s.siteRepo.GetByID(ctx, siteID); err != nil {
		return nil, err
	}

	b := &domainSite.Building{
		SiteID:       siteID,
		Name:         req.Name,
		BuildingType: req.BuildingType,
		Capacity:     req.Capacity,
		Active:       true,
	}
	if err := s.buildingRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("Building created",
		zap.String("building_id", b.ID.String()),
		zap.String("site_id", siteID.String()),
		zap.String("event", "building_created"),
	)
	return ToBuildingResponse(b), nil
}

func (s *Service) UpdateBuilding(ctx context.Context, buildingID uuid.UUID, req *UpdateBuildingRequest) (*BuildingResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	b, err := s.buildingRepo.GetByID(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireSite(ctx, b.SiteID); err != nil {
		return nil, err
	}
	if req.Name != nil {
		b.Name = utils.SanitizeString(*req.Name)
	}
	if req.BuildingType != nil {
		b.BuildingType = req.BuildingType
	}
	if req.Capacity != nil {
		b.Capacity = req.Capacity
	}
	if b.Name == "" {
		return nil, appErrors.Validation("building name is required", nil)
	}

	if err := s.buildingRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return ToBuildingResponse(b), nil
}

func (s *Service) DeleteBuilding(ctx context.Context, buildingID uuid.UUID) error {
	if err := s.checkBuilding(ctx, buildingID); err != nil {
		return err
	}
	if err := s.buildingRepo.Deactivate(ctx, buildingID); err != nil {
		return err
	}

	logger.Info("Building deactivated",
		zap.String("building_id", buildingID.String()),
		zap.String("event", "building_deactivated"),
	)
	return nil
}

func (s *Service) CreateRoom(ctx context.Context, buildingID uuid.UUID, req *CreateRoomRequest) (*RoomResponse, error) {
	req.Name = utils.SanitizeString(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	b, err := s.buildingRepo.GetByID(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	if !b.Active {
		return nil, domainSite.ErrBuildingNotFound
	}
	if err := authz.RequireSite(ctx, b.SiteID); err != nil {
		return nil, err
	}

	r := &domainSite.Room{
		BuildingID: buildingID,
		Name:       req.Name,
		RoomType:   req.RoomType,
		Capacity:   req.Capacity,
		Active:     true,
	}
	if err := s.roomRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	logger.Info("Room created",
		zap.String("room_id", r.ID.String()),
		zap.String("building_id", buildingID.String()),
		zap.String("event", "room_created"),
	)
	return ToRoomResponse(r), nil
}

func (s *Service) UpdateRoom(ctx context.Context, roomID uuid.UUID, req *UpdateRoomRequest) (*RoomResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	r, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if err := s.checkBuilding(ctx, r.BuildingID); err != nil {
		return nil, err
	}
	if req.Name != nil {
		r.Name = utils.SanitizeString(*req.Name)
	}
	if req.RoomType != nil {
		r.RoomType = req.RoomType
	}
	if req.Capacity != nil {
		r.Capacity = req.Capacity
	}
	if r.Name == "" {
		return nil, appErrors.Validation("room name is required", nil)
	}

	if err := s.roomRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return ToRoomResponse(r), nil
}

func (s *Service) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	if authz.SiteBound(ctx) {
		r, err := s.roomRepo.GetByID(ctx, roomID)
		if err != nil {
			return err
		}
		if err := s.checkBuilding(ctx, r.BuildingID); err != nil {
			return err
		}
	}
	if err := s.roomRepo.Deactivate(ctx, roomID); err != nil {
		return err
	}

	logger.Info("Room deactivated",
		zap.String("room_id", roomID.String()),
		zap.String("event", "room_deactivated"),
	)
	return nil
}

// checkBuilding resolves the site of a building for site-bound callers.
func (s *Service) checkBuilding(ctx context.Context, buildingID uuid.UUID) error {
	if !authz.SiteBound(ctx) {
		return nil
	}
	b, err := s.buildingRepo.GetByID(ctx, buildingID)
	if err != nil {
		return err
	}
	return authz.RequireSite(ctx, b.SiteID)
}
