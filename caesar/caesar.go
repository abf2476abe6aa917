// Package caesar implements the classic shift cipher over ASCII letters,
// plus a frequency-analysis Crack that recovers the shift without the key.
//
// Encrypt and Decrypt preserve case and pass every non-letter through
// untouched. Any integer shift is accepted and reduced modulo 26, so
// Decrypt(Encrypt(s, k), k) == s for all k.
//
// Crack scores all 26 candidate shifts against English letter frequencies
// with the chi-squared statistic and returns the best one. It needs a
// reasonable amount of English text to be reliable; a few words suffice,
// single letters do not.
package caesar

import (
	"errors"
	"strings"
)

// ErrNoLetters is returned by Crack when the input contains no ASCII letters.
var ErrNoLetters = errors.New("caesar: input contains no letters")

const alphabet = 26

// english holds relative letter frequencies for English text, a..z.
// Values from the classic Lewand ordering, in percent.
var english = [alphabet]float64{
	8.167, 1.492, 2.782, 4.253, 12.702, 2.228, 2.015, 6.094, 6.966,
	0.153, 0.772, 4.025, 2.406, 6.749, 7.507, 1.929, 0.095, 5.987,
	6.327, 9.056, 2.758, 0.978, 2.360, 0.150, 1.974, 0.074,
}

// Normalize reduces any integer shift into [0, 25].
func Normalize(shift int) int {
	return ((shift % alphabet) + alphabet) % alphabet
}

// Encrypt shifts every ASCII letter of plain forward by shift positions,
// wrapping within its case; all other runes pass through unchanged.
func Encrypt(plain string, shift int) string {
	k := Normalize(shift)
	var b strings.Builder
	b.Grow(len(plain))
	for _, r := range plain {
		b.WriteRune(rotate(r, k))
	}

	return b.String()
}

// Decrypt reverses Encrypt with the same shift.
func Decrypt(cipher string, shift int) string {
	return Encrypt(cipher, alphabet-Normalize(shift))
}

// Crack recovers the most plausible shift of cipher by chi-squared scoring
// against English letter frequencies, and returns the shift with the
// decrypted text. Returns ErrNoLetters when there is nothing to score.
func Crack(cipher string) (int, string, error) {
	var counts [alphabet]int
	total := 0
	for _, r := range cipher {
		switch {
		case r >= 'a' && r <= 'z':
			counts[r-'a']++
			total++
		case r >= 'A' && r <= 'Z':
			counts[r-'A']++
			total++
		}
	}
	if total == 0 {
		return 0, "", ErrNoLetters
	}

	best, bestScore := 0, -1.0
	for k := 0; k < alphabet; k++ {
		// decrypting with shift k maps ciphertext letter c to c-k
		score := 0.0
		for c := 0; c < alphabet; c++ {
			plain := ((c-k)%alphabet + alphabet) % alphabet
			observed := float64(counts[c]) / float64(total) * 100
			expected := english[plain]
			d := observed - expected
			score += d * d / expected
		}
		if bestScore < 0 || score < bestScore {
			best, bestScore = k, score
		}
	}

	return best, Decrypt(cipher, best), nil
}

// rotate shifts a single ASCII letter forward by k, preserving case.
func rotate(r rune, k int) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+rune(k))%alphabet
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+rune(k))%alphabet
	default:
		return r
	}
}
