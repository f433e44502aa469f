package cryptography

import (
	"fmt"

	"rsa_crypto_service/internal/domain/rsacrypto"
)

// ChunkOp applies a block-size-bounded primitive to a single chunk.
type ChunkOp func(chunk []byte) ([]byte, error)

// TransformChunks applies op across input in non-overlapping chunks of at
// most maxChunkSize bytes, concatenating the outputs in order. The last chunk
// may be shorter; an input whose length is an exact multiple of maxChunkSize
// produces no trailing empty chunk. Chunks are processed strictly
// sequentially and the first failure aborts the transform with no partial
// output. Empty input yields empty output with zero op calls.
func TransformChunks(input []byte, maxChunkSize int, op ChunkOp) ([]byte, error) {
	if maxChunkSize <= 0 {
		return nil, fmt.Errorf("%w: max chunk size must be positive, got %d", rsacrypto.ErrInvalidChunkParameters, maxChunkSize)
	}

	var out []byte
	chunkIndex := 0
	for offset := 0; offset < len(input); offset += maxChunkSize {
		end := offset + maxChunkSize
		if end > len(input) {
			end = len(input)
		}

		outChunk, err := op(input[offset:end])
		if err != nil {
			return nil, &rsacrypto.ChunkOperationError{ChunkIndex: chunkIndex, Status: err}
		}

		out = append(out, outChunk...)
		chunkIndex++
	}
	return out, nil
}
