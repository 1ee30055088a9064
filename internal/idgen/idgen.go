// Package idgen assigns identifiers to showcase projects and comments.
package idgen

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	NewID() string
}

// Timestamp derives ids from the creation time in milliseconds. Two ids created
// within the same millisecond collide.
type Timestamp struct {
	Now func() time.Time
}

func (g Timestamp) NewID() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return strconv.FormatInt(now().UnixMilli(), 10)
}

// Random issues uuid v4 ids.
type Random struct{}

func (Random) NewID() string {
	return uuid.NewString()
}

// New picks a generator by strategy name; anything but "uuid" yields Timestamp.
func New(strategy string) Generator {
	if strategy == "uuid" {
		return Random{}
	}
	return Timestamp{}
}
