package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitadapt/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RemoteVerifier resolves tokens by asking the auth provider who the token belongs to.
// GET {authURL}/auth/v1/user
type RemoteVerifier struct {
	authURL    string
	serviceKey string
	httpClient *http.Client
}

type remoteUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewRemoteVerifier(authURL, serviceKey string, httpClient *http.Client) *RemoteVerifier {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RemoteVerifier{
		authURL:    strings.TrimSuffix(authURL, "/"),
		serviceKey: serviceKey,
		httpClient: httpClient,
	}
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.remote.verify")
	defer func() { tracing.EndSpan(span, err) }()

	if token == "" {
		return nil, ErrMissingToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.authURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.serviceKey)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		log.Errorf("auth provider request failed: %s", err)
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read auth response: %s", ErrInvalidToken, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Tracef("auth provider rejected token, status %d: %s", resp.StatusCode, respBytes)
		return nil, ErrInvalidToken
	}

	var ru remoteUser
	if err := json.Unmarshal(respBytes, &ru); err != nil {
		return nil, fmt.Errorf("%w: unmarshal auth response: %s", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(ru.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id [%s]", ErrInvalidToken, ru.ID)
	}

	return &User{
		ID:    userID,
		Email: ru.Email,
		Role:  ru.Role,
	}, nil
}
