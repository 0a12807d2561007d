package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Parâmetros da derivação de chave. O salt é fixo porque o segredo mestre
	// é único por instalação; o custo alto compensa segredos não uniformes.
	keyLength       = 32
	pbkdf2Iteration = 120_000

	nonceLength = 12
)

var derivationSalt = []byte("traffic-sync-engine.credential-vault.v1")

// ErrDecryption indica ciphertext adulterado, chave errada ou blob malformado
var ErrDecryption = errors.New("falha ao decriptar credencial")

// ErrMissingMasterSecret indica que o segredo mestre não foi configurado
var ErrMissingMasterSecret = errors.New("segredo mestre do vault não configurado")

// Vault encripta e decripta tokens de acesso em repouso usando AES-256-GCM
// com chave derivada do segredo mestre via PBKDF2
type Vault struct {
	aead cipher.AEAD
}

// NewVault deriva a chave do segredo mestre e prepara o cifrador
func NewVault(masterSecret string) (*Vault, error) {
	if masterSecret == "" {
		return nil, ErrMissingMasterSecret
	}

	key := pbkdf2.Key([]byte(masterSecret), derivationSalt, pbkdf2Iteration, keyLength, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cifrador AES: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar AEAD GCM: %w", err)
	}

	return &Vault{aead: aead}, nil
}

// Encrypt encripta o texto plano e retorna base64(nonce || ciphertext || tag).
// String vazia é retornada como vazia, sem tocar o cifrador.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("erro ao gerar nonce: %w", err)
	}

	sealed := v.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt decripta um blob produzido por Encrypt. Qualquer adulteração do
// ciphertext ou do nonce resulta em ErrDecryption
func (v *Vault) Decrypt(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: base64 inválido", ErrDecryption)
	}

	if len(sealed) < nonceLength+v.aead.Overhead() {
		return "", fmt.Errorf("%w: blob menor que nonce + tag", ErrDecryption)
	}

	nonce, ciphertext := sealed[:nonceLength], sealed[nonceLength:]

	plaintext, err := v.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: tag de autenticação não confere", ErrDecryption)
	}

	return string(plaintext), nil
}

// GenerateKey gera um candidato aleatório de segredo mestre para operadores.
// Utilidade operacional, não participa do fluxo de sincronização
func GenerateKey() (string, error) {
	key := make([]byte, keyLength)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("erro ao gerar chave: %w", err)
	}

	return base64.StdEncoding.EncodeToString(key), nil
}
