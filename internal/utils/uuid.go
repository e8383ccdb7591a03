package utils

import "github.com/google/uuid"

// UUIDGenerator hands out identifiers for user records.
// Time-ordered v7 UUIDs are preferred; v4 is used when the v7 source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
