package middleware

import (
	"context"
	"net/http"

	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"
)

// Auth gates requests on the signed token cookie. The validated user and
// token identifiers are placed on the request context for the handlers.
// An expired token is reported the same way as a tampered one.
func (a *appMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := a.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		cookie, err := request.Cookie(a.config.JWT.CookieName)
		if err != nil || cookie.Value == "" {
			err := failure.Unauthorized("Unauthorized - no token provided")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := a.jwtService.ValidateToken(cookie.Value)
		if err != nil || claims.UserID == "" {
			err := failure.Unauthorized("Unauthorized - invalid token")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
