package toolbox

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// Encrypt tags input with key and algorithm label and base64 encodes the
// result. It is a stand-in for a real keyed cipher and offers no secrecy.
func (t *Toolbox) Encrypt(req CipherRequest) (Result, error) {
	if strings.TrimSpace(req.Input) == "" {
		return Result{}, validationError(OpEncrypt, "Please enter the text to encrypt")
	}
	if strings.TrimSpace(req.Key) == "" {
		return Result{}, validationError(OpEncrypt, "Please enter a key")
	}

	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = t.opts.CipherAlgorithm
	}

	plain := req.Input + CipherSeparator + req.Key + CipherSeparator + algorithm
	return Result{
		Output:  base64.StdEncoding.EncodeToString([]byte(plain)),
		Message: "Encrypted successfully! (simulated, use a backend cipher service for real encryption)",
	}, nil
}

// Decrypt reverses Encrypt. The payload must split into at least three
// parts; when it ends with the given key and a label, everything before the
// key is returned so inputs containing the separator survive.
func (t *Toolbox) Decrypt(req CipherRequest) (Result, error) {
	if strings.TrimSpace(req.Input) == "" {
		return Result{}, validationError(OpDecrypt, "Please enter the text to decrypt")
	}
	if strings.TrimSpace(req.Key) == "" {
		return Result{}, validationError(OpDecrypt, "Please enter a key")
	}

	raw, err := decodeBase64(req.Input)
	if err != nil {
		return Result{}, formatError(OpDecrypt, "Decryption failed", err)
	}
	if !utf8.Valid(raw) {
		return Result{}, formatError(OpDecrypt, "Decryption failed", errMalformedUTF8)
	}
	plain := string(raw)

	parts := strings.Split(plain, CipherSeparator)
	if len(parts) < 3 {
		return Result{}, formatError(OpDecrypt, "Decryption failed", errInvalidCipherData)
	}

	output := parts[0]
	if cut := strings.LastIndex(plain, CipherSeparator); cut >= 0 {
		if rest, ok := strings.CutSuffix(plain[:cut], CipherSeparator+req.Key); ok {
			output = rest
		}
	}

	return Result{Output: output, Message: "Decrypted successfully!"}, nil
}
