package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/kakao"
)

type KakaoService interface {
	// GenerateState generates a random state string for OAuth2 flows.
	GenerateState(userAgent string) string
	// RedirectURL generates the OAuth2 redirect URL with a state.
	RedirectURL(state string) string
	// VerifyToken exchanges the code for an OAuth2 token.
	VerifyToken(ctx context.Context, code string) (*oauth2.Token, error)
	// VerifyUser fetches and verifies the Kakao account information.
	VerifyUser(ctx context.Context, token *oauth2.Token) (KakaoInformation, error)
}

type KakaoServiceImpl struct {
	config *oauth2.Config
}

func NewKakaoService(clientID string, clientSecret string, redirectURL string) KakaoService {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"profile_nickname"},
		Endpoint:     kakao.Endpoint,
	}
	return &KakaoServiceImpl{config: config}
}

type KakaoInformation struct {
	KakaoID  string
	Nickname string
}

type kakaoUserResponse struct {
	ID         int64 `json:"id"`
	Properties struct {
		Nickname string `json:"nickname"`
	} `json:"properties"`
}

// GenerateState generates a random state string for OAuth2 flows.
func (k *KakaoServiceImpl) GenerateState(userAgent string) string {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return ""
	}
	state := fmt.Sprintf("%s.%s", base64.URLEncoding.EncodeToString(b), userAgent)
	return base64.URLEncoding.EncodeToString([]byte(state))
}

func (k *KakaoServiceImpl) RedirectURL(state string) string {
	return k.config.AuthCodeURL(state)
}

func (k *KakaoServiceImpl) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := k.config.Exchange(ctx, code)
	if err != nil {
		return &oauth2.Token{}, err
	}
	return token, nil
}

func (k *KakaoServiceImpl) VerifyUser(ctx context.Context, token *oauth2.Token) (KakaoInformation, error) {
	var body kakaoUserResponse

	client := k.config.Client(ctx, token)

	resp, err := client.Get("https://kapi.kakao.com/v2/user/me")
	if err != nil {
		return KakaoInformation{}, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return KakaoInformation{}, err
	}

	return KakaoInformation{
		KakaoID:  strconv.FormatInt(body.ID, 10),
		Nickname: body.Properties.Nickname,
	}, nil
}
