package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// UnknownName is shown when a token carries no readable user name.
const UnknownName = "Unknown"

var (
	ErrNoUserField = errors.New("token has no user field")
	ErrNoFirstName = errors.New("user record has no first_name")
)

type tokenUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// DisplayName extracts first_name from the URL-encoded JSON carried in the
// token's "user=" parameter. The token is Telegram initData, e.g.
// "query_id=...&user=%7B%22first_name%22%3A%22Ann%22%7D&auth_date=...".
func DisplayName(token string) (string, error) {
	_, rest, found := strings.Cut(token, "user=")
	if !found {
		return "", ErrNoUserField
	}
	raw, _, _ := strings.Cut(rest, "&")

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("failed to unescape user field: %w", err)
	}

	var user tokenUser
	if err := json.Unmarshal([]byte(decoded), &user); err != nil {
		return "", fmt.Errorf("failed to decode user field: %w", err)
	}
	if user.FirstName == "" {
		return "", ErrNoFirstName
	}
	return user.FirstName, nil
}

// DisplayNameOrUnknown is DisplayName with the failure folded into UnknownName.
func DisplayNameOrUnknown(token string) string {
	name, err := DisplayName(token)
	if err != nil {
		return UnknownName
	}
	return name
}
