package service

import (
	"crypto/rand"

	"github.com/avc-dev/shorturls/internal/model"
)

const (
	CodeLength   = 6
	AllowedChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// maxUnbiasedByte наибольшее кратное len(AllowedChars), не превышающее 256
	maxUnbiasedByte = 256 - 256%len(AllowedChars)
)

// CodeGenerator генерирует случайные base62 коды из crypto/rand
type CodeGenerator struct{}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() model.Code {
	return model.Code(g.generateRandomString())
}

// generateRandomString генерирует случайную строку длины CodeLength.
// Байты >= maxUnbiasedByte отбрасываются, чтобы распределение символов было равномерным.
func (g *CodeGenerator) generateRandomString() string {
	result := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength*2)

	for len(result) < CodeLength {
		// rand.Read не возвращает ошибок начиная с Go 1.24
		_, _ = rand.Read(buf)

		for _, b := range buf {
			if int(b) >= maxUnbiasedByte {
				continue
			}
			result = append(result, AllowedChars[int(b)%len(AllowedChars)])
			if len(result) == CodeLength {
				break
			}
		}
	}

	return string(result)
}
