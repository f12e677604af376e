package event

import appErrors "bioacoustic-monitor/pkg/errors"

var (
	ErrEventNotFound = appErrors.New(appErrors.ErrNotFound, "event not found")
	ErrNoAudioClip   = appErrors.New(appErrors.ErrNotFound, "event has no audio clip")
)
