package service

import (
	"encoding/base64"
	"sort"
	"strings"
)

// SaltChecksumSigner is the placeholder Zoho algorithm: sort field names,
// join as key=value with '&', append '|salt', base64-encode. Deterministic,
// so the callback verification can recompute and compare.
//
// TODO: swap in Zoho's documented algorithm once the merchant account ships
// it; only this type should need to change.
type SaltChecksumSigner struct {
	Salt string
}

func (s SaltChecksumSigner) Sign(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+fields[k])
	}

	raw := strings.Join(parts, "&") + "|" + s.Salt
	return base64.StdEncoding.EncodeToString([]byte(raw))
}
