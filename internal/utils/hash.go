// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

// Hasher signs payloads with HMAC-SHA256 under a fixed key. Hash instances
// are pooled; a Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey, or nil when hashKey is
// empty. All methods treat a nil Hasher as "signing disabled".
func NewHasher(hashKey string) *Hasher {
	if hashKey == "" {
		return nil
	}
	key := []byte(hashKey)
	return &Hasher{pool: sync.Pool{
		New: func() any { return hmac.New(sha256.New, key) },
	}}
}

// Sum returns the raw HMAC of data.
func (h *Hasher) Sum(data []byte) []byte {
	if h == nil {
		return nil
	}
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()
	mac.Write(data)
	sum := mac.Sum(nil)
	h.pool.Put(mac)
	return sum
}

// SumHex returns the hex-encoded HMAC of data, or "" when signing is disabled.
func (h *Hasher) SumHex(data []byte) string {
	if h == nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signature is the hex HMAC of data. A nil Hasher
// accepts everything.
func (h *Hasher) Verify(data []byte, signature string) bool {
	if h == nil {
		return true
	}
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, h.Sum(data))
}
