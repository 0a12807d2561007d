package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVault_EncryptDecryptRoundTrip(t *testing.T) {
	vault, err := NewVault("segredo-mestre-de-teste")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "token curto", plaintext: "abc"},
		{name: "token longo da API", plaintext: strings.Repeat("EAABsbCS1iHgBO", 20)},
		{name: "caracteres especiais", plaintext: "tok|en:com/çãrácteres+especiais="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := vault.Encrypt(tt.plaintext)
			require.NoError(t, err)
			assert.NotEqual(t, tt.plaintext, encrypted)

			decrypted, err := vault.Decrypt(encrypted)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, decrypted)
		})
	}
}

func TestVault_EncryptGeneratesDistinctCiphertexts(t *testing.T) {
	vault, err := NewVault("segredo-mestre-de-teste")
	require.NoError(t, err)

	// Nonce aleatório por chamada: mesmo texto plano nunca repete ciphertext
	first, err := vault.Encrypt("mesmo-token")
	require.NoError(t, err)

	second, err := vault.Encrypt("mesmo-token")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVault_EmptyStringIsNoOp(t *testing.T) {
	vault, err := NewVault("segredo-mestre-de-teste")
	require.NoError(t, err)

	encrypted, err := vault.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, encrypted)

	decrypted, err := vault.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, decrypted)
}

func TestVault_DecryptTamperedCiphertext(t *testing.T) {
	vault, err := NewVault("segredo-mestre-de-teste")
	require.NoError(t, err)

	encrypted, err := vault.Encrypt("token-sensivel")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encrypted)
	require.NoError(t, err)

	// Inverte um único bit no meio do ciphertext
	raw[len(raw)/2] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = vault.Decrypt(tampered)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestVault_DecryptMalformedInput(t *testing.T) {
	vault, err := NewVault("segredo-mestre-de-teste")
	require.NoError(t, err)

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "base64 inválido", encoded: "isto-não-é-base64!!!"},
		{name: "blob menor que nonce mais tag", encoded: base64.StdEncoding.EncodeToString([]byte("curto"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vault.Decrypt(tt.encoded)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

func TestVault_DecryptWithWrongKey(t *testing.T) {
	vaultA, err := NewVault("segredo-a")
	require.NoError(t, err)

	vaultB, err := NewVault("segredo-b")
	require.NoError(t, err)

	encrypted, err := vaultA.Encrypt("token-sensivel")
	require.NoError(t, err)

	_, err = vaultB.Decrypt(encrypted)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestNewVault_MissingMasterSecret(t *testing.T) {
	_, err := NewVault("")
	assert.ErrorIs(t, err, ErrMissingMasterSecret)
}

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(key)
	require.NoError(t, err)
	assert.Len(t, decoded, keyLength)

	other, err := GenerateKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}
