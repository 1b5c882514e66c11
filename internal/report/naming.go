package report

import (
	"fmt"
	"strconv"
	"strings"

	"gtp/internal/domain"
)

const (
	filePrefix = "result_"
	fileSuffix = ".json"
	escapeByte = '.'
)

// FileName returns the report file name for a suite.
// Bytes outside [a-z0-9_-] are written as '.' followed by two uppercase hex digits.
// Uppercase letters are escaped too, so names that differ only in case never
// share a file on case-insensitive filesystems.
func FileName(suite domain.SuiteID) string {
	var b strings.Builder
	b.Grow(len(filePrefix) + len(suite) + len(fileSuffix))
	b.WriteString(filePrefix)
	for i := 0; i < len(suite); i++ {
		c := suite[i]
		if isSafe(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%c%02X", escapeByte, c)
	}
	b.WriteString(fileSuffix)
	return b.String()
}

// SuiteFromFileName reverses FileName
func SuiteFromFileName(name string) (domain.SuiteID, error) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return "", fmt.Errorf("not a report file name: %q", name)
	}
	encoded := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)

	var b strings.Builder
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c != escapeByte {
			if !isSafe(c) {
				return "", fmt.Errorf("invalid byte %q in report file name %q", c, name)
			}
			b.WriteByte(c)
			continue
		}
		if i+2 >= len(encoded) {
			return "", fmt.Errorf("truncated escape in report file name %q", name)
		}
		if !isUpperHex(encoded[i+1]) || !isUpperHex(encoded[i+2]) {
			return "", fmt.Errorf("invalid escape %q in report file name %q", encoded[i:i+3], name)
		}
		v, err := strconv.ParseUint(encoded[i+1:i+3], 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid escape in report file name %q: %w", name, err)
		}
		b.WriteByte(byte(v))
		i += 2
	}
	return domain.SuiteID(b.String()), nil
}

func isSafe(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

func isUpperHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'F'
}
