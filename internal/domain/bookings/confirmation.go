package bookings

import (
	"math/rand/v2"
	"strings"
)

const (
	confirmationPrefix   = "BB"
	confirmationAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	confirmationLength   = 6
)

// ConfirmationCodeGenerator produces short human-readable booking codes.
// The codes are not secrets; uniqueness is enforced by the database
// constraint, with the caller retrying on collision.
type ConfirmationCodeGenerator struct{}

func NewConfirmationCodeGenerator() *ConfirmationCodeGenerator {
	return &ConfirmationCodeGenerator{}
}

func (g *ConfirmationCodeGenerator) Generate() string {
	var sb strings.Builder
	sb.WriteString(confirmationPrefix)
	for i := 0; i < confirmationLength; i++ {
		sb.WriteByte(confirmationAlphabet[rand.IntN(len(confirmationAlphabet))])
	}
	return sb.String()
}
