package profile

import appErrors "bioacoustic-monitor/pkg/errors"

var ErrProfileNotFound = appErrors.New(appErrors.ErrNotFound, "profile not found")
