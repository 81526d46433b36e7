package hello

import "errors"

var ErrUnexpectedTarget = errors.New("hello: bind target must be *hello.Request")
