// Package idgenerator produces unique identifiers composed of an optional
// prefix, a millisecond timestamp and a base64-encoded UUID. Release ticket
// ids and provider references are minted through it.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	epocTime := time.Now().UnixMilli()
	encodedUUID := rawURLEncodedUUID(uuid.New())

	if prefix == "" {
		return fmt.Sprintf("%d%s", epocTime, encodedUUID)
	}
	return fmt.Sprintf("%s-%d%s", prefix, epocTime, encodedUUID)
}

func rawURLEncodedUUID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}
