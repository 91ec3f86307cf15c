// Package codec provides block-level compression capability records for the
// parablock engine.
//
// # Overview
//
// A Codec is a flat set of pure functions over caller-owned buffers: no
// state is shared across calls, and every call can run on any goroutine.
// This replaces a class-hierarchy compression design (distinct types for
// "stream compressor", "block compressor", "seekable compressor", and so
// on) with one interface that the engine can look up from a table and
// invoke directly.
//
//	type Codec interface {
//	    AlgorithmName() string
//	    MaxCompressionLevel() int
//	    DefaultCompressionLevel() int
//	    MinBlockSize() int
//	    MaxBlockSize() int
//	    MaxCompressedBlockSize(uncompressedSize int) int
//	    CompressBlock(dst, src []byte, level int) int
//	    UncompressBlock(dst, src []byte) int
//	}
//
// # Supported algorithms
//
// Six codecs are registered: three are required by the engine's design
// (one DEFLATE-class, one fast LZ77-class, one high-ratio variant of the
// same LZ77 family), three are optional additions carried over from the
// rest of the ecosystem.
//
//	AlgorithmNoop     never compresses; verbatim copy both ways
//	AlgorithmDeflate  DEFLATE, via klauspost/compress/flate
//	AlgorithmLZ4      fast LZ77, via pierrec/lz4/v4 Compressor
//	AlgorithmLZ4HC    high-ratio LZ77, via pierrec/lz4/v4 CompressorHC
//	AlgorithmZstd     optional, higher ratio still, different algorithm family
//	AlgorithmS2       optional, Snappy-family, very fast decompression
//
// # Choosing a codec
//
// | Priority                     | Recommended |
// |-------------------------------|-------------|
// | Decompression speed           | LZ4 or S2   |
// | Balance of ratio and speed    | Deflate     |
// | Best ratio, CPU is cheap      | LZ4HC       |
// | Best ratio at any cost        | Zstd        |
// | Measuring engine overhead     | Noop        |
//
// # Memory
//
// CompressBlock and UncompressBlock never retain dst or src past the call.
// LZ4 pools its encoder state (a reusable hash table). Zstd pools one
// encoder per level plus its decoders. Deflate and LZ4HC construct their
// encoder state on every call.
//
// # Thread safety
//
// Every Codec value in this package is safe for concurrent use by multiple
// goroutines; this is a requirement of the engine, which calls CompressBlock
// and UncompressBlock from worker goroutines with no synchronization of
// their own.
package codec
