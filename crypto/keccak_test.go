package crypto

import "testing"

func TestKeccak256EmptyInput(t *testing.T) {
	// keccak256("") is a well-known constant, useful as a regression check
	// on the hash implementation itself.
	got := Keccak256Hash([]byte{}).Hex()
	want := "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
	if got != want {
		t.Fatalf("keccak256(\"\") = %s, want %s", got, want)
	}
}

func TestKeccak256VariadicConcatenates(t *testing.T) {
	whole := Keccak256([]byte("helloworld"))
	parts := Keccak256([]byte("hello"), []byte("world"))
	if string(whole) != string(parts) {
		t.Fatal("Keccak256 over multiple byte slices should hash their concatenation")
	}
}
