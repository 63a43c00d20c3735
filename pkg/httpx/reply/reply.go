package reply

import (
	"cmp"
	"context"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"offer_landing/pkg/contextx"
	"offer_landing/pkg/logx"
	"offer_landing/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Accepted(w http.ResponseWriter) {
	w.WriteHeader(http.StatusAccepted)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error writes {"error": <description>} with the status matching the failure
// kind. Errors that are not failures become 500.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err), logx.Stringer("code", failure.Code(err)))

	switch {
	case failure.IsInvalidArgumentError(err):
		JSON(ctx, w, http.StatusBadRequest, errorResponse(err, "invalid argument"))
	case failure.IsNotFoundError(err):
		JSON(ctx, w, http.StatusNotFound, errorResponse(err, "not found"))
	case failure.IsUnauthorizedError(err):
		JSON(ctx, w, http.StatusUnauthorized, errorResponse(err, "unauthorized"))
	case failure.IsForbiddenError(err):
		JSON(ctx, w, http.StatusForbidden, errorResponse(err, "forbidden"))
	case failure.IsConflictError(err):
		JSON(ctx, w, http.StatusConflict, errorResponse(err, "conflict"))
	case failure.IsUnprocessableEntityError(err):
		JSON(ctx, w, http.StatusUnprocessableEntity, errorResponse(err, "unprocessable entity"))
	default:
		JSON(ctx, w, http.StatusInternalServerError, rest.Error{Error: "internal server error"})
	}
}

func errorResponse(err error, defaultMessage string) rest.Error {
	return rest.Error{Error: cmp.Or(failure.Description(err), defaultMessage)}
}
