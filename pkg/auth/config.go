package auth

import (
	"os"
)

// Config reúne as opções de autenticação por PIN lidas do ambiente
type Config struct {
	// DefaultPIN é o PIN partilhado atribuído aos perfis criados sem
	// PIN próprio
	DefaultPIN string

	// DemoLoginEnabled liga o fallback de demonstração: um PIN sem
	// correspondência igual ao DemoPIN entra no perfil mais recente.
	// Desligado por padrão; nunca ligar em produção.
	DemoLoginEnabled bool

	// DemoPIN é o PIN que aciona o fallback de demonstração
	DemoPIN string
}

// NewConfigFromEnv cria a configuração a partir de variáveis de ambiente
func NewConfigFromEnv() Config {
	defaultPIN := os.Getenv("AUTH_DEFAULT_PIN")
	if defaultPIN == "" {
		defaultPIN = "123456"
	}

	demoPIN := os.Getenv("AUTH_DEMO_PIN")
	if demoPIN == "" {
		demoPIN = defaultPIN
	}

	return Config{
		DefaultPIN:       defaultPIN,
		DemoLoginEnabled: os.Getenv("AUTH_DEMO_LOGIN") == "true",
		DemoPIN:          demoPIN,
	}
}
