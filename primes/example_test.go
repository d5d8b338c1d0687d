package primes_test

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/mutekichi/cptoolkit/primes"
)

func ExampleFactorize() {
	fs, _ := primes.Factorize(12)
	ds, _ := primes.Divisors(12)

	fmt.Println(fs, ds, primes.IsPrime(998244353))
	// Output:
	// [2^2 3^1] [1 2 3 4 6 12] true
}

// ExampleSieve builds a table once and answers many queries from it.
func ExampleSieve() {
	s, err := primes.NewSieve(50)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fs, _ := s.Factorize(48)
	ok, _ := s.IsPrime(47)

	fmt.Println(s.PrimeCount(), fs, ok)
	// Output:
	// 15 [2^4 3^1] true
}

// ExampleSieve_Bitmap intersects the primes with a set of candidate ids.
func ExampleSieve_Bitmap() {
	s, _ := primes.NewSieve(100)
	candidates := roaring.BitmapOf(10, 11, 12, 13, 91, 97)

	fmt.Println(roaring.And(s.Bitmap(), candidates).ToArray())
	// Output:
	// [11 13 97]
}
