package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitadapt/internal/auth"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=middleware_test

type tokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.User, error)
}

// RequireUser rejects requests without a valid bearer token and stores the
// verified user in the request context.
func RequireUser(verifier tokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			token, err := auth.BearerToken(r)
			if err != nil {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no authorization header", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			user, err := verifier.Verify(ctx, token)
			if err != nil || user == nil {
				if err != nil && !errors.Is(err, auth.ErrInvalidToken) {
					log.Errorf("[failed token check] => %s: %s", r.URL.Path, err)
					span.RecordError(err)
				}
				http.Error(w, "user not authenticated", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-authenticated")
				return
			}

			span.SetAttributes(attribute.String("user_id", user.ID.String()))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}
