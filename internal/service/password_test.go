package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSHA256Hasher(t *testing.T) {
	h := SHA256Hasher{}

	hash, err := h.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", hash)

	again, _ := h.Hash("password")
	assert.Equal(t, hash, again, "digest is deterministic and unsalted")

	assert.True(t, h.Verify(hash, "password"))
	assert.False(t, h.Verify(hash, "Password"))
	assert.False(t, h.Verify("", "password"))
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, h.Verify(hash, "hunter2"))
	assert.False(t, h.Verify(hash, "hunter3"))
}

func TestNewPasswordHasher(t *testing.T) {
	tests := []struct {
		name    string
		want    interface{}
		wantErr bool
	}{
		{name: "", want: SHA256Hasher{}},
		{name: HasherSHA256, want: SHA256Hasher{}},
		{name: HasherBcrypt, want: BcryptHasher{}},
		{name: "md5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPasswordHasher(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}
