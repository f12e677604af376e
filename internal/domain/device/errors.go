package device

import appErrors "bioacoustic-monitor/pkg/errors"

var (
	ErrDeviceNotFound      = appErrors.New(appErrors.ErrNotFound, "device not found")
	ErrDeviceAlreadyExists = appErrors.New(appErrors.ErrDuplicateKey, "device UID already registered")
	ErrDeviceAssigned      = appErrors.New(appErrors.ErrValidationFailed, "device is assigned to a room")
	ErrSiteHasNoDevices    = appErrors.New(appErrors.ErrValidationFailed, "site has no devices")
)
