package domain

import "errors"

var ErrUnknownWinner = errors.New("winner is not a tracked player")
var ErrSessionNotFound = errors.New("session not found")
