// Package twitter é o cliente da rede social. Valida o limite de
// caracteres antes de chamar a API; o motor de takes nunca trunca texto.
package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"
)

// MaxPostLen é o limite de caracteres da plataforma
const MaxPostLen = 280

// ErrTooLong indica take acima do limite; o chamador decide reescrever
var ErrTooLong = errors.New("post text exceeds platform limit")

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(base, token string) *Client {
	return &Client{
		BaseURL: base,
		Token:   token,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// TimelinePost é um post lido da timeline de um usuário
type TimelinePost struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Text   string `json:"text"`
}

type postRequest struct {
	Text    string `json:"text"`
	QuoteID string `json:"quote_tweet_id,omitempty"`
}

type postResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type timelineResponse struct {
	Data []TimelinePost `json:"data"`
}

// Post publica um texto e devolve o id do post criado
func (c *Client) Post(ctx context.Context, text string) (string, error) {
	return c.post(ctx, postRequest{Text: text})
}

// Quote publica um comentário citando um post existente
func (c *Client) Quote(ctx context.Context, text, quotedID string) (string, error) {
	return c.post(ctx, postRequest{Text: text, QuoteID: quotedID})
}

func (c *Client) post(ctx context.Context, pr postRequest) (string, error) {
	if utf8.RuneCountInString(pr.Text) > MaxPostLen {
		return "", fmt.Errorf("%w: %d runes", ErrTooLong, utf8.RuneCountInString(pr.Text))
	}

	body, _ := json.Marshal(pr)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/tweets", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return "", fmt.Errorf("social post http %d", res.StatusCode)
	}

	var out postResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Data.ID, nil
}

// Timeline lê os posts mais recentes de um usuário, opcionalmente a partir
// de um id (exclusivo). Usado pelo injury-monitor.
func (c *Client) Timeline(ctx context.Context, username, sinceID string) ([]TimelinePost, error) {
	url := fmt.Sprintf("%s/users/%s/tweets", c.BaseURL, username)
	if sinceID != "" {
		url += "?since_id=" + sinceID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("social timeline http %d", res.StatusCode)
	}

	var out timelineResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
