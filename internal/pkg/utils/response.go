package utils

import (
	"errors"
	"net/http"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/responses"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildResourceResponse writes data as the whole JSON body, without the
// success/message envelope. Report routes answer this way.
func BuildResourceResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// BuildErrorResponse writes err as the JSON error body. Operator details are only
// exposed outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := exceptions.CustomError{
		StatusCode:    constvars.StatusInternalServerError,
		ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		response.StatusCode = customErr.StatusCode
		response.ClientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.Any(constvars.LoggingLocationsKey, customErr.Locations),
			zap.NamedError(constvars.LoggingCauseKey, customErr.Unwrap()),
		)
		if GetEnvString("APP_ENV", constvars.AppEnvDevelopment) != constvars.AppEnvProduction {
			response.DevMessage = customErr.DevMessage
			response.Locations = customErr.Locations
		}
	} else {
		log.Error(err.Error(), zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode))
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(response.StatusCode)
	json.NewEncoder(w).Encode(response)
}
