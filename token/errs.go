package token

import "errors"

var ErrToken = errors.New("token error")
