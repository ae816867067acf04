package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	gommonbytes "github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
)

// ContentChecksum returns the hex SHA256 of data. Identical uploads share a checksum.
func ContentChecksum(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// ParseByteSize reads sizes such as "5MB" (5,000,000 bytes) or "5MiB"
// (5,242,880 bytes).
func ParseByteSize(raw string) (int64, error) {
	size, err := gommonbytes.Parse(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid byte size %q", raw)
	}
	if size <= 0 {
		return 0, errors.Errorf("byte size must be positive, got %q", raw)
	}

	return size, nil
}

// FormatBytes renders a size in the same decimal units ParseByteSize accepts,
// so a "5MB" limit reads back as "5.00MB".
func FormatBytes(size int64) string {
	return gommonbytes.FormatDecimal(size)
}
