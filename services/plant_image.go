package services

import (
	"encoding/hex"
	"strings"
)

// DecodePlantImage turns the stored image column into the URL shown to
// clients. The column holds the URL as hex text; rows written by other tools
// may hold the raw URL bytes, which are returned as they are.
func DecodePlantImage(raw []byte) *string {
	if len(raw) == 0 {
		return nil
	}

	text := string(raw)
	if decoded, err := hex.DecodeString(strings.TrimSpace(text)); err == nil && len(decoded) > 0 {
		text = string(decoded)
	}
	text = strings.ToValidUTF8(text, "\uFFFD")
	return &text
}

// EncodePlantImage stores the URL as hex text, so any URL survives
// DecodePlantImage unchanged.
func EncodePlantImage(url string) []byte {
	if url == "" {
		return nil
	}
	return []byte(hex.EncodeToString([]byte(url)))
}
