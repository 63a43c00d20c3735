package deal

import (
	"offer_landing/internal/domain"
	"offer_landing/pkg/errcodes"
)

// errNotFound matches any AppError with the DealNotFound code.
var errNotFound = domain.NewError(errcodes.DealNotFound, "deal not found") //nolint:gochecknoglobals
