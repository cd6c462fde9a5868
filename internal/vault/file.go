package vault

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"otpvault/internal/cryptox"
)

// Blob layout:
//
//	magic "OTPV" | format byte | vault ID (16) | argon2 salt (16) | nonce (12) | ciphertext
//
// Everything before the nonce is public metadata: the ID names the keyring
// account, the salt feeds the passphrase mode, and both are needed before
// a key exists. Integrity of the payload comes from GCM authentication.
const (
	blobMagic          = "OTPV"
	formatVersion byte = 1
	headerSize         = len(blobMagic) + 1 + 16 + cryptox.SaltSize + cryptox.NonceSize
)

// Header is the plaintext prefix of a sealed vault file.
type Header struct {
	Format byte
	ID     string
	Salt   []byte
}

// ReadHeader parses the public metadata of a blob without a key in hand.
func ReadHeader(blob []byte) (Header, error) {
	if len(blob) < headerSize || !bytes.HasPrefix(blob, []byte(blobMagic)) {
		return Header{}, fmt.Errorf("%w: not a vault file", ErrCorruptVault)
	}
	format := blob[len(blobMagic)]
	if format != formatVersion {
		return Header{}, fmt.Errorf("%w: unsupported format version %d", ErrCorruptVault, format)
	}

	rest := blob[len(blobMagic)+1:]
	id, err := uuid.FromBytes(rest[:16])
	if err != nil {
		return Header{}, fmt.Errorf("%w: bad vault id", ErrCorruptVault)
	}
	salt := make([]byte, cryptox.SaltSize)
	copy(salt, rest[16:16+cryptox.SaltSize])

	return Header{Format: format, ID: id.String(), Salt: salt}, nil
}

// Seal serializes and encrypts the store. Each call draws a fresh nonce,
// so sealing the same state twice yields different bytes.
func (s *Store) Seal(key []byte) ([]byte, error) {
	plaintext, err := s.marshalPayload()
	if err != nil {
		return nil, err
	}

	nonce, ciphertext, err := cryptox.Seal(key, plaintext)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, 0, headerSize+len(ciphertext))
	blob = append(blob, blobMagic...)
	blob = append(blob, formatVersion)
	blob = append(blob, s.id[:]...)
	blob = append(blob, s.salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)
	return blob, nil
}

// Open decrypts and deserializes a sealed vault. Authentication failure
// (wrong key or tampered ciphertext) is ErrDecryptionFailed; structural
// problems before or after decryption are ErrCorruptVault.
func Open(key, blob []byte) (*Store, error) {
	hdr, err := ReadHeader(blob)
	if err != nil {
		return nil, err
	}

	body := blob[len(blobMagic)+1+16+cryptox.SaltSize:]
	nonce := body[:cryptox.NonceSize]
	ciphertext := body[cryptox.NonceSize:]

	plaintext, err := cryptox.Open(key, nonce, ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	s := &Store{
		id:   uuid.MustParse(hdr.ID),
		salt: hdr.Salt,
	}
	if err := s.unmarshalPayload(plaintext); err != nil {
		return nil, err
	}
	return s, nil
}
