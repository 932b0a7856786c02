package odds

// Binomial returns C(n, k), the number of k-element subsets of an
// n-element set, computed exactly with the multiplicative formula.
// Out-of-domain arguments (n < 0, k < 0, k > n) return 0 rather than
// panicking; the probability formula leans on that to count impossible
// draws as zero instead of failing.
func Binomial(n, k int) int64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	var c int64 = 1
	for i := 1; i <= k; i++ {
		// Multiply before dividing; the running value is itself a
		// binomial coefficient, so every division is exact.
		c = c * int64(n-k+i) / int64(i)
	}
	return c
}
