package api

import (
	"net/http"
)

type authOpt struct {
	token string
}

// BotAuth authorizes a request with a bot token.
func BotAuth(token string) *authOpt {
	return &authOpt{token: "Bot " + token}
}

// OAuth2 authorizes a request with a bearer-style token.
func OAuth2(prefix, token string) *authOpt {
	return &authOpt{token: prefix + " " + token}
}

func (opt *authOpt) Do(client defaultClient, req *http.Request) {
	req.Header.Add("Authorization", opt.token)
}
