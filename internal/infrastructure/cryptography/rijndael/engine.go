package rijndael

import (
	"fmt"
	"runtime"

	"github.com/MGTheTrain/crypto-lab/internal/domain/crypto"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the block count from which an Engine fans blocks out to workers.
const DefaultParallelThreshold = 256

// Engine encrypts and decrypts whole messages with AES in ECB mode and PKCS#7 padding.
// An Engine holds no key material and is safe for concurrent use.
type Engine struct {
	padding           PaddingMode
	workers           int
	parallelThreshold int
}

// Option configures an Engine.
type Option func(*Engine)

// WithPaddingMode sets how padding is validated on decryption.
func WithPaddingMode(mode PaddingMode) Option {
	return func(e *Engine) {
		e.padding = mode
	}
}

// WithWorkers caps the number of goroutines used for one message. Values below 1
// select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		e.workers = n
	}
}

// WithParallelThreshold sets the minimum block count processed in parallel.
func WithParallelThreshold(blocks int) Option {
	return func(e *Engine) {
		if blocks < 1 {
			blocks = 1
		}
		e.parallelThreshold = blocks
	}
}

// NewEngine returns an Engine with strict padding and GOMAXPROCS workers unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		padding:           PaddingStrict,
		workers:           runtime.GOMAXPROCS(0),
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PaddingMode returns the padding mode used on decryption.
func (e *Engine) PaddingMode() PaddingMode {
	return e.padding
}

// Encrypt pads message and encrypts every block independently under key.
func (e *Engine) Encrypt(message, key []byte) ([]byte, error) {
	ks, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}

	padded := Pad(message, BlockSize)
	out := make([]byte, len(padded))
	if err := e.crypt(out, padded, ks, EncryptBlock); err != nil {
		return nil, err
	}
	return out, nil
}

// Decrypt decrypts every block of ciphertext under key and removes the padding.
func (e *Engine) Decrypt(ciphertext, key []byte) ([]byte, error) {
	ks, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, &crypto.EncodingError{
			Err: fmt.Errorf("ciphertext length %d is not a positive multiple of %d", len(ciphertext), BlockSize),
		}
	}

	out := make([]byte, len(ciphertext))
	if err := e.crypt(out, ciphertext, ks, DecryptBlock); err != nil {
		return nil, err
	}

	return Unpad(out, BlockSize, e.padding)
}

// crypt applies fn to each block of src, writing into the matching offset of dst.
// A panic inside fn is returned as an error for the offending block range.
func (e *Engine) crypt(dst, src []byte, ks *KeySchedule, fn func(dst, src []byte, ks *KeySchedule)) error {
	blocks := len(src) / BlockSize
	if blocks < e.parallelThreshold || e.workers < 2 {
		return cryptRange(dst, src, ks, fn, 0, blocks)
	}

	workers := e.workers
	if workers > blocks {
		workers = blocks
	}
	perWorker := (blocks + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < blocks; start += perWorker {
		start := start
		end := min(start+perWorker, blocks)
		g.Go(func() error {
			return cryptRange(dst, src, ks, fn, start, end)
		})
	}
	return g.Wait()
}

// cryptRange transforms blocks [start, end).
func cryptRange(dst, src []byte, ks *KeySchedule, fn func(dst, src []byte, ks *KeySchedule), start, end int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("block transform failed in blocks [%d, %d): %v", start, end, r)
		}
	}()

	for i := start; i < end; i++ {
		off := i * BlockSize
		fn(dst[off:off+BlockSize], src[off:off+BlockSize], ks)
	}
	return nil
}
