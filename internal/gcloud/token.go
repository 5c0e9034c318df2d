package gcloud

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// tokenSource fetches application-default access tokens through the gcloud
// session. Implements oauth2.TokenSource so the API client can use it
// directly.
type tokenSource struct {
	project string
	runner  Runner
}

// NewTokenSource returns a cached oauth2.TokenSource for the project,
// backed by `gcloud auth application-default print-access-token`.
func NewTokenSource(project string, r Runner) oauth2.TokenSource {
	return oauth2.ReuseTokenSource(nil, &tokenSource{project: project, runner: r})
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	out, err := s.runner.Run(context.Background(),
		"auth", "application-default", "print-access-token",
		"--project", s.project,
	)
	if err != nil {
		return nil, err
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return nil, fmt.Errorf("gcloud returned an empty access token for project %q", s.project)
	}

	// gcloud does not report the expiry; ADC tokens last an hour, so
	// refresh well before that.
	return &oauth2.Token{
		AccessToken: token,
		Expiry:      time.Now().Add(45 * time.Minute),
	}, nil
}
