package site

import appErrors "bioacoustic-monitor/pkg/errors"

var (
	ErrSiteNotFound     = appErrors.New(appErrors.ErrNotFound, "site not found")
	ErrBuildingNotFound = appErrors.New(appErrors.ErrNotFound, "building not found")
	ErrRoomNotFound     = appErrors.New(appErrors.ErrNotFound, "room not found")
)
