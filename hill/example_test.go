package hill_test

import (
	"fmt"

	"github.com/katalvlaran/laguide/hill"
)

func ExampleCipher_Encrypt() {
	key, _ := hill.NewKey([][]int{{1, 2}, {3, 5}})
	c, err := hill.NewCipher(key)
	if err != nil {
		fmt.Println(err)
		return
	}
	enc, _ := c.Encrypt("hello world?")
	dec, _ := c.Decrypt(enc)
	fmt.Println(enc)
	fmt.Println(dec)
	// Output:
	// VEKWOT.MQLHZ
	// HELLO WORLD?
}

func ExampleEncrypt_refused() {
	key, _ := hill.NewKey([][]int{{1, 2}, {2, 4}})
	out, err := hill.Encrypt("secret", key, nil)
	fmt.Println(out)
	fmt.Println(err != nil)
	// Output:
	// secret
	// true
}
