/*
Package bits provides the symbolic bit types shared by the lfsr and stream packages.

A Sequence is an ordered list of Bit values, each exactly Zero or One.
Sequences are written and parsed as text made of the characters '0' and '1', front-to-back.

# Text encoding:

EncodeText turns every character of a string into the 8-bit big-endian value of its code point, so "A" (65) becomes "01000001".
DecodeText reverses this by grouping bits into 8-bit chunks.
Only code points that fit in 8 bits (U+0000 through U+00FF) can be represented.
*/
package bits
