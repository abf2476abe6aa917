package caesar_test

import (
	"fmt"

	"github.com/krelore/strukt/caesar"
)

func ExampleEncrypt() {
	fmt.Println(caesar.Encrypt("attack at dawn", 3))
	// Output:
	// dwwdfn dw gdzq
}

// ExampleCrack recovers the shift from ciphertext alone.
func ExampleCrack() {
	cipher := caesar.Encrypt("meet me at the usual place at noon", 11)
	shift, plain, err := caesar.Crack(cipher)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(shift)
	fmt.Println(plain)
	// Output:
	// 11
	// meet me at the usual place at noon
}
