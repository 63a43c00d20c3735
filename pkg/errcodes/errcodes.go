package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError    failure.ErrorCode = "InternalServerError"
	TimeoutExceeded        failure.ErrorCode = "TimeoutExceeded"
	ValidationError        failure.ErrorCode = "ValidationError"
	NotFound               failure.ErrorCode = "NotFound"
	DealIdentifierRequired failure.ErrorCode = "DealIdentifierRequired"
	InvalidContactAction   failure.ErrorCode = "InvalidContactAction"
	InvalidEvent           failure.ErrorCode = "InvalidEvent"

	DealNotFound   failure.ErrorCode = "DealNotFound"
	CRMUnavailable failure.ErrorCode = "CRMUnavailable"
	CRMBadResponse failure.ErrorCode = "CRMBadResponse"
)
