package handler

import (
	"go-auth-api/common"
	"go-auth-api/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

// appHandler is the handler shape used throughout this package: failures are returned, not written.
type appHandler func(http.ResponseWriter, *http.Request) *common.AppError

// ErrorHandlingMiddleware writes the *common.AppError returned by next, if any.
func ErrorHandlingMiddleware(next appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appErr := next(w, r)
		if appErr == nil {
			return
		}
		logger.Log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": appErr.Code,
		}).Debug("Request failed")
		appErr.Send(w)
	}
}
