package solver

// Tables holds the static letter statistics used for guess selection.
// A Tables value is built once and treated as read-only.
type Tables struct {
	// Absolute is the relative frequency of each letter a–z in English
	// text, independent of position.
	Absolute [26]float64
	// Common lists the most frequent letters; used by StrategyCommon.
	Common []byte
	// Vowels lists the vowels; used by StrategyVowels.
	Vowels []byte
}

// DefaultTables returns the Oxford Dictionary (9th edition, 1995) letter
// frequencies, where q is the least frequent letter at 1.0, together with
// the usual common-letter and vowel sets.
func DefaultTables() *Tables {
	t := &Tables{
		Common: []byte("etaionshr"),
		Vowels: []byte("aeiou"),
	}
	for letter, f := range map[byte]float64{
		'e': 56.88, 'a': 43.31, 'r': 38.64, 'i': 38.45, 'o': 36.51,
		't': 35.43, 'n': 33.92, 's': 29.23, 'l': 27.98, 'c': 21.13,
		'u': 18.51, 'd': 17.25, 'p': 16.04, 'm': 15.36, 'h': 15.31,
		'g': 12.59, 'b': 10.56, 'f': 9.24, 'y': 9.06, 'w': 6.57,
		'k': 5.61, 'v': 5.13, 'x': 1.48, 'z': 1.39, 'j': 1.01,
		'q': 1.0,
	} {
		t.Absolute[letter-'a'] = f
	}
	return t
}
