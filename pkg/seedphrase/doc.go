/*
Package seedphrase derives an LFSR seed and tap set from a user-provided passphrase.

Raw bit strings are awkward to remember and share, so this package stretches a passphrase with scrypt and reads the register configuration out of the derived key.

# How it works:

A random salt is generated and passed with the passphrase to scrypt.
The first bytes of the derived key become the register seed, and the remaining bytes choose distinct tap positions.
Giving DeriveRegister the same passphrase and salt, with the same KeyGenerator settings, reproduces the same register.

# General guidelines:
  - The salt isn't secret, and must be kept alongside anything screened with the derived register.
  - Deriving from a passphrase does NOT make the LFSR keystream secure. It only makes configuration easier to share.
  - If you're not an expert, then don't use SetIterations, SetCPUCost, or SetRelativeBlockSize.
  - The KeyGenerator settings can be serialized with MarshalBinary so a recipient can use the same derivation.
*/
package seedphrase
