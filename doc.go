// Package skipscan finds every case-insensitive occurrence of a pattern in a
// text using skip-based exact matching.
//
// Two strategies are available: a simplified skip search driven by the last
// pattern symbol ([search.Simple]) and the Boyer-Moore algorithm with
// bad-character and good-suffix shifts ([search.BoyerMoore]). Both report the
// same positions for the same input.
//
// # Quick Start
//
//	res, err := skipscan.FindAll("Polly put the kettle on, polly put the kettle on", "polly", search.BoyerMoore)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Positions) // [0 25]
//
// Positions are 0-based byte offsets in ascending order. Overlapping
// occurrences are all reported, so "ll" in "allll" yields 1, 2 and 3.
//
// # Engines
//
// An [Engine] carries options shared across searches:
//
//	eng := skipscan.New(skipscan.Config{CacheSize: 128, Verify: true})
//	seq, err := eng.Matches(text, "kettle", search.Simple)
//	for pos := range seq {
//	    // ...
//	}
//
// Only the ASCII letters fold; every other byte, including non-ASCII bytes,
// must match exactly.
//
// # Error Handling
//
// An empty text or pattern is rejected with an [*EmptyInputError], which
// matches [ErrEmptyInput] under errors.Is. An unknown algorithm yields an
// error wrapping [search.ErrUnknownAlgorithm].
package skipscan
