package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
)

// M is a response envelope. Every payload carries a top-level success flag
// alongside its own keys.
type M map[string]any

// WithJSON sends the payload with success derived from the status code.
func WithJSON(writer http.ResponseWriter, code int, payload M) {
	body := M{"success": code < http.StatusBadRequest}
	for key, value := range payload {
		body[key] = value
	}

	response(writer, code, body)
}

// WithMessage sends a response with a simple text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	WithJSON(writer, code, M{"message": message})
}

// WithError sends a response with the message and code carried by err.
func WithError(writer http.ResponseWriter, err error) {
	WithJSON(writer, failure.GetCode(err), M{"message": err.Error()})
}

// WithFile sends raw file contents as a named attachment.
func WithFile(writer http.ResponseWriter, fileName, contentType string, data []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", fileName))
	writer.Header().Set(constant.RequestHeaderContentLength, fmt.Sprint(len(data)))

	if _, err := writer.Write(data); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded.
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down.
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy.
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
