// Copyright (C) 2025 Specter Ops, Inc.
//
// This file is part of PIMHound.
//
// PIMHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PIMHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rest

import (
	"fmt"
	"time"
)

type Token struct {
	AccessToken  string         `json:"access_token"`
	ExpiresIn    IntOrStringInt `json:"expires_in"`
	TokenType    string         `json:"token_type"`
	RefreshToken string         `json:"refresh_token,omitempty"`

	expires time.Time
}

func (s Token) String() string {
	return fmt.Sprintf("%s %s", s.TokenType, s.AccessToken)
}

func (s Token) IsExpired() bool {
	return s.AccessToken == "" || time.Now().After(s.expires)
}

// setExpiry stamps the wall-clock deadline, refreshing a minute before the
// token actually lapses.
func (s *Token) setExpiry() {
	s.expires = time.Now().Add(time.Duration(s.ExpiresIn)*time.Second - time.Minute)
}

// newStaticToken wraps a caller-supplied access token. The expiry comes from
// the token's own exp claim when present.
func newStaticToken(accessToken string) Token {
	token := Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		expires:     time.Now().Add(time.Hour),
	}
	if body, err := ParseBody(accessToken); err == nil {
		if exp, ok := body["exp"].(float64); ok {
			token.expires = time.Unix(int64(exp), 0)
		}
	}
	return token
}
