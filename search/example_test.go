package search_test

import (
	"fmt"

	"github.com/sivalab/sival/search"
)

// ExampleFirstOccurrence locates the threshold of a sorted pass/fail sweep:
// each sample is 0 (pass) or 1 (fail), and the first failing index is the
// margin of the part under test.
func ExampleFirstOccurrence() {
	sweep := []int{0, 0, 0, 1, 1, 1, 1}
	idx, err := search.FirstOccurrence(sweep, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("first failure at sample", idx)
	// Output:
	// first failure at sample 3
}

// ExampleMaxStable bisects a clock range instead of sweeping it linearly.
func ExampleMaxStable() {
	stable := func(mhz int) bool { return mhz <= 2800 }
	fmax, err := search.MaxStable(2000, 3200, stable)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("max stable clock: %d MHz\n", fmax)
	// Output:
	// max stable clock: 2800 MHz
}
