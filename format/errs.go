package format

import "errors"

var errInternal = errors.New("internal error")
