// Package whatsapp monta links de cobrança wa.me com mensagem
// pré-preenchida para clientes com telefone registado.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

var (
	// ErrNoPhone ocorre quando o cliente não tem telefone registado
	ErrNoPhone = errors.New("número não registado")
)

// defaultCountryCode é o indicativo de Moçambique
const defaultCountryCode = "258"

// CountryCode retorna o indicativo de país configurado
func CountryCode() string {
	if cc := os.Getenv("WHATSAPP_COUNTRY_CODE"); cc != "" {
		return cc
	}
	return defaultCountryCode
}

// NormalizePhone remove tudo que não é dígito e garante o indicativo
// de país no início
func NormalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	clean := digits.String()
	if clean == "" {
		return "", ErrNoPhone
	}

	cc := CountryCode()
	if !strings.HasPrefix(clean, cc) {
		clean = cc + clean
	}
	return clean, nil
}

// CollectionLink monta o link wa.me com a mensagem de cobrança para um
// devedor. O valor já chega formatado (ex.: "1.500 MT").
func CollectionLink(phone, customerName, businessName, formattedDebt string) (string, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf(
		"Olá %s, aqui é da %s. Notamos o saldo de %s pendente no DívidaZero. Obrigado!",
		customerName, businessName, formattedDebt,
	)
	return fmt.Sprintf("https://wa.me/%s?text=%s", normalized, url.QueryEscape(msg)), nil
}
