package response

import (
	"context"
	stderrors "errors"
	"net/http"

	"Wardrobe/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

// ErrorHandler turns errors returned from handlers into a status code and a
// code/msg body. Errors that do not carry a code come from request parsing.
func ErrorHandler(ctx context.Context, err error) (int, any) {
	var cm *errors.CodeMsg
	if !stderrors.As(err, &cm) {
		return http.StatusBadRequest, NewResponse(errno.InvalidParam, err.Error())
	}

	status := HTTPStatus(cm.Code)
	if status >= http.StatusInternalServerError {
		logx.WithContext(ctx).Errorf("request failed: code=%d msg=%s", cm.Code, cm.Msg)
	}
	return status, NewResponse(cm.Code, cm.Msg)
}

// HTTPStatus maps an errno code to the HTTP status it is reported with.
func HTTPStatus(code int) int {
	switch code {
	case errno.StatusOK:
		return http.StatusOK
	case errno.TokenEmpty, errno.TokenInvalidFormat, errno.TokenExpired, errno.TokenInvalid,
		errno.UserNotFound, errno.InvalidCredentials:
		return http.StatusUnauthorized
	case errno.InvalidParam, errno.NoFilesUploaded:
		return http.StatusBadRequest
	case errno.UserAlreadyExists:
		return http.StatusConflict
	case errno.WardrobeItemNotFound:
		return http.StatusNotFound
	case errno.FileTooLarge:
		return http.StatusRequestEntityTooLarge
	case errno.RateLimited:
		return http.StatusTooManyRequests
	case errno.UpstreamModelError, errno.UpstreamWeatherError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
