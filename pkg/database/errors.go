package database

import "errors"

// ErrNotReady is returned while the connection has not passed its startup ping.
var ErrNotReady = errors.New("database not ready")
