package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeDigits = 5
	codeSpace  = 100000
)

type randomCodeGenerator struct{}

// NewCodeGenerator returns a [CodeGenerator] of uniformly random 5-digit
// codes from crypto/rand. Leading zeros are kept.
func NewCodeGenerator() CodeGenerator {
	return randomCodeGenerator{}
}

func (randomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", fmt.Errorf("error generating verification code: %w", err)
	}
	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}
