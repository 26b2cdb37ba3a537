// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap

// IsPrime - trial division by odd factors
func IsPrime(n int) bool {
	if 2 == n || 3 == n {
		return true
	}
	if n < 2 || 0 == n%2 {
		return false
	}
	for factor := 3; factor*factor <= n; factor += 2 {
		if 0 == n%factor {
			return false
		}
	}
	return true
}

// NextPrime - an even n is first raised by one, then the smallest
// prime from there; so two gives three and anything below three
// gives three
func NextPrime(n int) int {
	if n < 3 {
		return 3
	}
	if 0 == n%2 {
		n += 1
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}
