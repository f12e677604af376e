package organization

import appErrors "bioacoustic-monitor/pkg/errors"

var (
	ErrOrganizationNotFound = appErrors.New(appErrors.ErrNotFound, "organization not found")
	ErrSlugTaken            = appErrors.New(appErrors.ErrDuplicateKey, "organization slug already in use")
)
