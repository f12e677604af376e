package site

import (
	"time"

	domainSite "bioacoustic-monitor/internal/domain/site"
	"bioacoustic-monitor/internal/fleet"
	usecaseDevice "bioacoustic-monitor/internal/usecase/device"

	"github.com/google/uuid"
)

type SiteFilterRequest struct {
	OrganizationID *uuid.UUID `form:"organization_id"`
	ActiveOnly     bool       `form:"active_only"`
}

type UpdateSiteRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=120"`
	Location *string `json:"location" validate:"omitempty,max=255"`
	Active   *bool   `json:"active"`
}

type CreateBuildingRequest struct {
	Name         string  `json:"name" validate:"required,max=120"`
	BuildingType *string `json:"building_type" validate:"omitempty,max=60"`
	Capacity     *int    `json:"capacity" validate:"omitempty,min=0"`
}

type UpdateBuildingRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=120"`
	BuildingType *string `json:"building_type" validate:"omitempty,max=60"`
	Capacity     *int    `json:"capacity" validate:"omitempty,min=0"`
}

type CreateRoomRequest struct {
	Name     string  `json:"name" validate:"required,max=120"`
	RoomType *string `json:"room_type" validate:"omitempty,max=60"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=0"`
}

type UpdateRoomRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=120"`
	RoomType *string `json:"room_type" validate:"omitempty,max=60"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=0"`
}

type SiteResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Location       *string   `json:"location"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BuildingResponse struct {
	ID           uuid.UUID `json:"id"`
	SiteID       uuid.UUID `json:"site_id"`
	Name         string    `json:"name"`
	BuildingType *string   `json:"building_type"`
	Capacity     *int      `json:"capacity"`
	Active       bool      `json:"active"`
}

type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	BuildingID uuid.UUID `json:"building_id"`
	Name       string    `json:"name"`
	RoomType   *string   `json:"room_type"`
	Capacity   *int      `json:"capacity"`
	Active     bool      `json:"active"`
}

type HealthResponse struct {
	Total      int        `json:"total"`
	Online     int        `json:"online"`
	Percentage int        `json:"percentage"`
	Band       fleet.Band `json:"band"`
}

type RoomNode struct {
	RoomResponse
	Devices []usecaseDevice.DeviceResponse `json:"devices"`
}

type BuildingNode struct {
	BuildingResponse
	HasOfflineDevices bool       `json:"has_offline_devices"`
	Rooms             []RoomNode `json:"rooms"`
}

type SiteDetailResponse struct {
	SiteResponse
	Health    HealthResponse `json:"health"`
	Buildings []BuildingNode `json:"buildings"`
}

func ToSiteResponse(s *domainSite.Site) *SiteResponse {
	if s == nil {
		return nil
	}
	return &SiteResponse{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		Name:           s.Name,
		Location:       s.Location,
		Active:         s.Active,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func ToBuildingResponse(b *domainSite.Building) *BuildingResponse {
	if b == nil {
		return nil
	}
	return &BuildingResponse{
		ID:           b.ID,
		SiteID:       b.SiteID,
		Name:         b.Name,
		BuildingType: b.BuildingType,
		Capacity:     b.Capacity,
		Active:       b.Active,
	}
}

func ToRoomResponse(r *domainSite.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:         r.ID,
		BuildingID: r.BuildingID,
		Name:       r.Name,
		RoomType:   r.RoomType,
		Capacity:   r.Capacity,
		Active:     r.Active,
	}
}

func toHealthResponse(h fleet.Health) HealthResponse {
	return HealthResponse{
		Total:      h.Total,
		Online:     h.Online,
		Percentage: h.Percentage(),
		Band:       h.Band(),
	}
}
