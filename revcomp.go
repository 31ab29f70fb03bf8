// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

// complement maps each of {A,C,G,T,N} to its Watson-Crick complement;
// all other byte values are invalid input (§4.H).
var complement = [256]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'N': 'N',
}

var isBase = [256]bool{
	'A': true, 'C': true, 'G': true, 'T': true, 'N': true,
}

// RevComp reverse-complements seq in place, restricted to the {A,C,G,T,N}
// alphabet. On encountering any other byte it returns a ParamError; the
// sequence may be left partially transformed, matching the original's
// failure behaviour (§4.H, property 5 of §8).
func RevComp(seq []byte) error {
	n := len(seq)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !isBase[seq[i]] {
			return Errorf(ParamError, "rapi: invalid base %q at position %d", seq[i], i)
		}
		if !isBase[seq[j]] {
			return Errorf(ParamError, "rapi: invalid base %q at position %d", seq[j], j)
		}
		seq[i], seq[j] = complement[seq[j]], complement[seq[i]]
	}
	if n%2 == 1 {
		mid := n / 2
		if !isBase[seq[mid]] {
			return Errorf(ParamError, "rapi: invalid base %q at position %d", seq[mid], mid)
		}
		seq[mid] = complement[seq[mid]]
	}
	return nil
}

// RevCompString returns the reverse complement of s as a new string,
// without mutating s.
func RevCompString(s string) (string, error) {
	b := []byte(s)
	if err := RevComp(b); err != nil {
		return "", err
	}
	return string(b), nil
}
