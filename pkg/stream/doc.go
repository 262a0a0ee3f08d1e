/*
Package stream provides an XOR stream cipher driven by a bit keystream, usually produced by an lfsr.Register.

Note that this is NOT secure encryption.
An LFSR keystream is linear and easy to recover from a little known plaintext, so this falls squarely under the obfuscation category.
It's NOT recommended for security critical use.

# How it works:

Combine applies a bitwise XOR of a keystream to every bit of the input.
Once a keystream bit is used, the next one is taken.
When the last keystream bit is used, the first will be used again, operating like a ring buffer.
The output always has the same length as the input.

XOR is its own inverse, so combining the ciphertext with the same keystream recovers the original input.

Reader and Writer apply the same screening to byte streams, 8 keystream bits per byte with the first bit applied to the most significant bit.
The keystream may be a fixed bits.Sequence (with an optional starting offset) or a live lfsr.Register, which never repeats early the way a short fixed key does.

# Important note:

The same keystream (or the same register seed and taps) and offset must be provided to accurately reverse the process.
Failing to do so will likely result in garbled or partly de-obfuscated data.
*/
package stream
