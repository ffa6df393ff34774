package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Hasher_KnownVector(t *testing.T) {
	h := NewSHA256Hasher()

	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", h.Hash(""))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", h.Hash("abc"))
}

func TestSHA256Hasher_DeterministicAndDistinct(t *testing.T) {
	h := NewSHA256Hasher()

	assert.Equal(t, h.Hash("pw1"), h.Hash("pw1"))
	assert.NotEqual(t, h.Hash("pw1"), h.Hash("pw2"))
	assert.Len(t, h.Hash("pw1"), 64)
}
