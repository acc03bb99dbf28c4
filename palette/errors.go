package palette

import "errors"

var (
	ErrEmptyImage     = errors.New("image has no pixels or no colors")
	ErrMalformedRange = errors.New("cycle range outside palette bounds")
	ErrPixelIndex     = errors.New("pixel index outside palette bounds")
	ErrPaletteSize    = errors.New("palette length does not match base palette")
	ErrUnknownPalette = errors.New("timeline references unknown palette")
	ErrEmptySchedule  = errors.New("timeline has no entries")
	ErrBadMarker      = errors.New("timeline marker is not seconds since midnight")
)
