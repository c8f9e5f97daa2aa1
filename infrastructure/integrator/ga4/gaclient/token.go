package gaclient

import (
	"context"
	"crypto/rsa"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	gadomain "github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4/gadomain"
)

const (
	AnalyticsReadonlyScope = "https://www.googleapis.com/auth/analytics.readonly"
	jwtBearerGrantType     = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	assertionLifetime      = time.Hour
)

// ServiceAccountTokenSource troca uma asserção JWT assinada (RS256) por um access token
type ServiceAccountTokenSource struct {
	email      string
	key        *rsa.PrivateKey
	tokenURL   string
	scopes     []string
	HTTPClient *http.Client
	Now        func() time.Time
}

func NewServiceAccountTokenSource(email, privateKeyPEM, tokenURL string) (*ServiceAccountTokenSource, error) {
	key, err := ParsePrivateKey(privateKeyPEM)
	if err != nil {
		return nil, err
	}

	return &ServiceAccountTokenSource{
		email:      email,
		key:        key,
		tokenURL:   tokenURL,
		scopes:     []string{AnalyticsReadonlyScope},
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Now:        time.Now,
	}, nil
}

// ParsePrivateKey aceita chaves PKCS#1 ou PKCS#8 em PEM
func ParsePrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error) {
	if err := ValidatePrivateKeyFormat(privateKeyPEM); err != nil {
		return nil, err
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, errors.Wrap(err, "ga4: parse private key")
	}
	return key, nil
}

// ValidatePrivateKeyFormat confere os delimitadores PEM sem decodificar a chave
func ValidatePrivateKeyFormat(privateKeyPEM string) error {
	key := strings.TrimSpace(privateKeyPEM)
	if !strings.Contains(key, "-----BEGIN") || !strings.Contains(key, "PRIVATE KEY-----") {
		return errors.New("ga4: private key is missing the PEM header")
	}
	if !strings.HasSuffix(key, "PRIVATE KEY-----") {
		return errors.New("ga4: private key is missing the PEM footer")
	}
	return nil
}

func (s *ServiceAccountTokenSource) Token() (*oauth2.Token, error) {
	return s.TokenContext(context.Background())
}

// TokenContext faz a troca da asserção dentro do prazo de ctx
func (s *ServiceAccountTokenSource) TokenContext(ctx context.Context) (*oauth2.Token, error) {
	now := s.Now()

	claims := jwt.MapClaims{
		"iss":   s.email,
		"scope": strings.Join(s.scopes, " "),
		"aud":   s.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return nil, errors.Wrap(err, "ga4: sign assertion")
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrantType)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "ga4: create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "ga4: token request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "ga4: read token response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ga4: token exchange failed. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var tokenResp gadomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "ga4: decode token response")
	}

	if tokenResp.AccessToken == "" {
		return nil, errors.New("ga4: token response without access_token")
	}

	return &oauth2.Token{
		AccessToken: tokenResp.AccessToken,
		TokenType:   tokenResp.TokenType,
		Expiry:      now.Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
	}, nil
}

// cachedTokenSource guarda o token até expirar. Só uma troca acontece por vez e
// quem espera por ela desiste quando o próprio ctx expira.
type cachedTokenSource struct {
	source *ServiceAccountTokenSource
	sem    chan struct{}
	token  *oauth2.Token
}

func newCachedTokenSource(source *ServiceAccountTokenSource) *cachedTokenSource {
	return &cachedTokenSource{
		source: source,
		sem:    make(chan struct{}, 1),
	}
}

func (c *cachedTokenSource) Token(ctx context.Context) (*oauth2.Token, error) {
	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "ga4: waiting for token")
	}
	defer func() { <-c.sem }()

	if c.token.Valid() {
		return c.token, nil
	}

	token, err := c.source.TokenContext(ctx)
	if err != nil {
		return nil, err
	}

	c.token = token
	return token, nil
}
