/*
Package lfsr implements a linear feedback shift register that produces a pseudorandom bit sequence.

Note that this is NOT a cryptographically secure generator.
An LFSR is linear, so its output is trivially predictable once enough of it has been observed.
It's useful for deterministic keystreams, test patterns, and teaching, not for protecting secrets.

# How it works:

A Register is seeded with a bits.Sequence, which fixes its length for life, and a set of tap positions.
Tap positions are counted from the tail (rightmost) end of the register, starting at 0.
So with the seed "10101" tap 0 is the rightmost '1' and tap 2 is the middle '1'.

Each step computes a feedback bit by XOR-ing the bits found at every tap, starting from 0.
That feedback bit is both the output of the step and the bit shifted back in at the front, while the tail bit drops off.
An empty tap set always produces 0.

# General guidelines:
  - The same seed and taps always produce the same sequence.
  - A Register is stateful: generating n bits and then m bits yields the same output as generating n+m bits at once.
  - An all-zero seed stays all-zero forever. GenSeed never returns one.
  - A Register is not safe for concurrent use. Use Clone to hand out independent copies.
*/
package lfsr
