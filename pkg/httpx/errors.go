package httpx

import "errors"

var ErrNoCredential = errors.New("no credential configured")
