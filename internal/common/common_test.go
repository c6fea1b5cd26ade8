package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("secret")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestIsTaxonomy(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"not found", ErrNotFound, true},
		{"wrapped duplicate", fmt.Errorf("create: %w", ErrDuplicateEmail), true},
		{"store unavailable", fmt.Errorf("%w: dial tcp", ErrStoreUnavailable), true},
		{"token error is not taxonomy", ErrTokenExpired, false},
		{"arbitrary", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTaxonomy(tt.err); got != tt.want {
				t.Fatalf("IsTaxonomy(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
