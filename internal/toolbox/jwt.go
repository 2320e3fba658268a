package toolbox

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// pseudoSignatureLen is the length of the simulated JWT signature.
const pseudoSignatureLen = 20

const jwtVerifyUnsupported = "JWT verification requires backend API support"

// DecodedToken is the pretty-printed form returned by JWTDecode. Header and
// Payload keep the key order of the token.
type DecodedToken struct {
	Header    json.RawMessage `json:"header"`
	Payload   json.RawMessage `json:"payload"`
	Signature string          `json:"signature"`
}

// JWTEncode builds a structurally valid but unsigned token. The third
// segment is a truncated base64 of secret and the first two segments, not
// an HMAC.
func (t *Toolbox) JWTEncode(req JWTEncodeRequest) (Result, error) {
	if strings.TrimSpace(req.Header) == "" || strings.TrimSpace(req.Payload) == "" || strings.TrimSpace(req.Secret) == "" {
		return Result{}, validationError(OpJWTEncode, "Please fill in all required fields")
	}

	if err := checkJSON("header", req.Header); err != nil {
		return Result{}, formatError(OpJWTEncode, "JWT generation failed", err)
	}
	if err := checkJSON("payload", req.Payload); err != nil {
		return Result{}, formatError(OpJWTEncode, "JWT generation failed", err)
	}

	header := base64.RawStdEncoding.EncodeToString([]byte(req.Header))
	payload := base64.RawStdEncoding.EncodeToString([]byte(req.Payload))

	return Result{
		Output:  header + "." + payload + "." + pseudoSignature(req.Secret, header, payload),
		Message: "JWT generated! Note: the signature is simulated, use a backend signing service for real tokens",
	}, nil
}

// JWTDecode splits a token into its parts without checking the signature.
func (t *Toolbox) JWTDecode(req JWTDecodeRequest) (Result, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return Result{}, validationError(OpJWTDecode, "Please enter a JWT token")
	}

	decoded, err := DecodeToken(token)
	if err != nil {
		return Result{}, formatError(OpJWTDecode, "JWT decoding failed", err)
	}

	// Claims such as iss URLs keep their & < > characters.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(decoded); err != nil {
		return Result{}, formatError(OpJWTDecode, "JWT decoding failed", err)
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	return Result{Output: out, Message: "JWT decoded successfully!"}, nil
}

// JWTVerify always reports that verification needs a backend endpoint.
func (t *Toolbox) JWTVerify(req JWTVerifyRequest) (Result, error) {
	if strings.TrimSpace(req.Token) == "" || strings.TrimSpace(req.Secret) == "" {
		return Result{}, validationError(OpJWTVerify, "Please enter the JWT token and secret")
	}
	return Result{}, unsupportedError(OpJWTVerify, jwtVerifyUnsupported,
		jwtVerifyUnsupported+"\nIn production, call the /api/jwt/verify endpoint")
}

// DecodeToken parses the three segments of token. Segments may use the
// standard or URL-safe alphabet, with or without padding.
func DecodeToken(token string) (DecodedToken, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return DecodedToken{}, errInvalidJWT
	}

	header, err := decodeSegment("header", parts[0])
	if err != nil {
		return DecodedToken{}, err
	}
	payload, err := decodeSegment("payload", parts[1])
	if err != nil {
		return DecodedToken{}, err
	}

	return DecodedToken{Header: header, Payload: payload, Signature: parts[2]}, nil
}

func decodeSegment(name, segment string) (json.RawMessage, error) {
	raw, err := decodeBase64(segment)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	if err := checkJSON(name, string(raw)); err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

func checkJSON(name, s string) error {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return fmt.Errorf("invalid %s JSON: %w", name, err)
	}
	return nil
}

func pseudoSignature(secret, header, payload string) string {
	sig := base64.RawStdEncoding.EncodeToString([]byte(secret + header + payload))
	if len(sig) > pseudoSignatureLen {
		sig = sig[:pseudoSignatureLen]
	}
	return sig
}
