package booking

import "resortbooking/internal/domain"

var ErrCancelConfirmed = domain.NewStateConflictError(
	"cannot cancel a confirmed booking with payment, contact support")
