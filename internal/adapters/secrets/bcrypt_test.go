package secrets

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashCompare(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("hunter2hunter2")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !h.Compare(hash, "hunter2hunter2") {
		t.Fatal("correct password must compare true")
	}
	if h.Compare(hash, "wrong") {
		t.Fatal("wrong password must compare false")
	}
}

func TestCostFallback(t *testing.T) {
	if got := NewBcrypt(0).cost; got != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want default %d", got, bcrypt.DefaultCost)
	}
	if got := NewBcrypt(99).cost; got != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want default %d", got, bcrypt.DefaultCost)
	}
	if got := NewBcrypt(bcrypt.MinCost).cost; got != bcrypt.MinCost {
		t.Fatalf("cost = %d, want %d", got, bcrypt.MinCost)
	}
}
