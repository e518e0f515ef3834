package domain

import "time"

// User represents a bot user
type User struct {
	UserID    int64
	Locale    string
	CreatedAt time.Time
}

// Translation is an operator-provided message override
type Translation struct {
	Locale string
	Key    string
	Value  string
}
