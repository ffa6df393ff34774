package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// LinkToken carries a login and its password digest between the two calls of
// the Telegram link flow.
//
// The token is neither signed nor encrypted and has no expiry. Anyone holding
// it can complete a link for that login, so it is as sensitive as the digest
// it contains. The wire shape is kept stable for existing bot clients.
type LinkToken struct {
	Login    string `json:"Login"`
	Password string `json:"Password"`
}

// EncodeLinkToken serializes (login, digest) as base64 of its JSON form.
func EncodeLinkToken(login, passwordHash string) (string, error) {
	b, err := json.Marshal(LinkToken{Login: login, Password: passwordHash})
	if err != nil {
		return "", fmt.Errorf("link token encode: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeLinkToken reverses EncodeLinkToken. Anything that is not base64 of a
// JSON object yields common.ErrInvalidToken.
func DecodeLinkToken(s string) (*LinkToken, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	var token *LinkToken
	if err := json.Unmarshal(b, &token); err != nil || token == nil {
		return nil, common.ErrInvalidToken
	}

	return token, nil
}
