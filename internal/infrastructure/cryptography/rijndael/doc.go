// Package rijndael implements the AES block cipher (FIPS-197) for 128, 192 and 256-bit keys,
// together with PKCS#7 padding and an Electronic Codebook (ECB) engine that encrypts
// arbitrary-length messages block by block.
//
// The block layer (Cipher, EncryptBlock, DecryptBlock) knows nothing about modes of
// operation; Cipher satisfies crypto/cipher.Block so other chaining modes can wrap it.
// The implementation is table driven and not hardened against timing side channels.
package rijndael
