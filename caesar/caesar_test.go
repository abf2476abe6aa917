package caesar_test

import (
	"errors"
	"testing"

	"github.com/krelore/strukt/caesar"
)

// TestEncrypt covers case preservation, wrap-around, and pass-through.
func TestEncrypt(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		shift int
		want  string
	}{
		{"classic", "attack at dawn", 3, "dwwdfn dw gdzq"},
		{"wraps z", "xyz", 3, "abc"},
		{"preserves case", "Hello, World!", 5, "Mjqqt, Btwqi!"},
		{"non-letters untouched", "a1b2-c3", 1, "b1c2-d3"},
		{"zero shift", "same", 0, "same"},
		{"full cycle", "same", 26, "same"},
		{"negative shift", "bcd", -1, "abc"},
		{"large shift", "abc", 27, "bcd"},
		{"empty", "", 13, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := caesar.Encrypt(tc.in, tc.shift); got != tc.want {
				t.Errorf("Encrypt(%q, %d) = %q; want %q", tc.in, tc.shift, got, tc.want)
			}
		})
	}
}

// TestDecrypt_Roundtrip checks Decrypt inverts Encrypt for every shift.
func TestDecrypt_Roundtrip(t *testing.T) {
	const msg = "The quick brown fox jumps over the lazy dog."
	for k := -30; k <= 30; k++ {
		if got := caesar.Decrypt(caesar.Encrypt(msg, k), k); got != msg {
			t.Fatalf("roundtrip failed at shift %d: %q", k, got)
		}
	}
}

// TestNormalize pins the modular reduction.
func TestNormalize(t *testing.T) {
	cases := map[int]int{0: 0, 26: 0, 27: 1, -1: 25, -27: 25, 13: 13}
	for in, want := range cases {
		if got := caesar.Normalize(in); got != want {
			t.Errorf("Normalize(%d) = %d; want %d", in, got, want)
		}
	}
}

// TestCrack recovers shifts from English prose of varying length.
func TestCrack(t *testing.T) {
	plaintexts := []string{
		"the quick brown fox jumps over the lazy dog",
		"It was the best of times, it was the worst of times.",
		"To be, or not to be, that is the question: whether tis nobler in the mind to suffer.",
	}
	for _, plain := range plaintexts {
		for _, shift := range []int{1, 7, 13, 25} {
			cipher := caesar.Encrypt(plain, shift)
			got, recovered, err := caesar.Crack(cipher)
			if err != nil {
				t.Fatalf("Crack(%q): %v", cipher, err)
			}
			if got != shift {
				t.Errorf("Crack recovered shift %d; want %d (plain %q)", got, shift, plain)
			}
			if recovered != plain {
				t.Errorf("Crack text = %q; want %q", recovered, plain)
			}
		}
	}
}

// TestCrack_NoLetters rejects unscoreable input.
func TestCrack_NoLetters(t *testing.T) {
	for _, in := range []string{"", "123 456", "!!! ???"} {
		if _, _, err := caesar.Crack(in); !errors.Is(err, caesar.ErrNoLetters) {
			t.Errorf("Crack(%q): want ErrNoLetters, got %v", in, err)
		}
	}
}
