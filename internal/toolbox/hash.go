package toolbox

import (
	"context"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"
)

const md5Unsupported = "MD5 requires backend API support"

// newHasher returns a digest for algorithm. MD5 is a known menu entry that
// is deliberately not computed here.
func newHasher(op string, algorithm HashAlgorithm) (hash.Hash, error) {
	switch HashAlgorithm(strings.ToLower(string(algorithm))) {
	case HashSHA1:
		return sha1.New(), nil
	case HashSHA256:
		return sha256.New(), nil
	case HashSHA512:
		return sha512.New(), nil
	case HashMD5:
		return nil, unsupportedError(op, md5Unsupported, "")
	default:
		return nil, formatError(op, "Hashing failed", fmt.Errorf("%w %q", errUnsupportedHash, algorithm))
	}
}

// Hash digests the UTF-8 bytes of req.Input and returns lowercase hex.
func (t *Toolbox) Hash(req HashRequest) (Result, error) {
	if strings.TrimSpace(req.Input) == "" {
		return Result{}, validationError(OpHash, "Please enter the text to hash")
	}

	h, err := newHasher(OpHash, t.hashAlgorithm(req.Algorithm))
	if err != nil {
		return Result{}, err
	}
	h.Write([]byte(req.Input))

	return Result{
		Output:  hex.EncodeToString(h.Sum(nil)),
		Message: "Hash computed successfully!",
	}, nil
}

// HashReader streams r through the digest, checking ctx between reads.
func (t *Toolbox) HashReader(ctx context.Context, algorithm HashAlgorithm, r io.Reader) (string, error) {
	h, err := newHasher(OpHash, t.hashAlgorithm(algorithm))
	if err != nil {
		return "", err
	}

	buf := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (t *Toolbox) hashAlgorithm(a HashAlgorithm) HashAlgorithm {
	if a == "" {
		return t.opts.HashAlgorithm
	}
	return a
}
