package snapshot

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/pierrec/lz4"
	"github.com/ugorji/go/codec"

	"github.com/nullstride/rtvctl/rtv"
)

// formatVersion is bumped whenever the envelope layout changes
// incompatibly.
const formatVersion = 1

var (
	// ErrCorruptEnvelope is returned when an envelope's digest does not
	// match its payload, indicating truncation or tampering.
	ErrCorruptEnvelope = errors.New("snapshot: corrupt envelope")
	// ErrUnsupportedVersion is returned when decoding an envelope whose
	// format version this build does not understand.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported envelope version")
	// ErrSignatureInvalid is returned by Decode when a signed envelope's
	// signature does not verify against its embedded public key.
	ErrSignatureInvalid = errors.New("snapshot: signature invalid")
	// ErrNotSigned is returned by Verify when asked to check a signature
	// on an envelope that does not carry one.
	ErrNotSigned = errors.New("snapshot: envelope is not signed")
)

// Envelope is the decoded form of a serialised snapshot: a digest-checked,
// optionally signed, compressed encoding of a frozen Vector[Item].
type Envelope struct {
	Version          uint8
	UncompressedSize uint32
	Digest           [20]byte
	Compressed       []byte

	Signature []byte // DER-encoded ECDSA signature over Digest, or nil.
	PublicKey []byte // Compressed secp256k1 public key, or nil.
}

// Signed reports whether e carries a signature.
func (e *Envelope) Signed() bool {
	return len(e.Signature) > 0
}

// Encode builds an Envelope from a frozen vector of items, optionally
// signing the envelope's digest with signer.
func Encode(f *rtv.Frozen[Item], signer *btcec.PrivateKey) (*Envelope, error) {
	payload, err := encodeCBOR(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot: cbor encode: %w", err)
	}

	compressed, err := compress(payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot: compress: %w", err)
	}

	env := &Envelope{
		Version:          formatVersion,
		UncompressedSize: uint32(len(payload)),
		Digest:           digest(compressed),
		Compressed:       compressed,
	}

	if signer != nil {
		sig := ecdsa.Sign(signer, env.Digest[:])
		env.Signature = sig.Serialize()
		env.PublicKey = signer.PubKey().SerializeCompressed()
	}

	return env, nil
}

// Decode reverses Encode, verifying the digest (and, if present, the
// signature) before decompressing and decoding, so a corrupt or tampered
// envelope is never partially turned into a Vector.
func Decode(env *Envelope) (*rtv.Frozen[Item], error) {
	if env.Version != formatVersion {
		return nil, fmt.Errorf("%w: got version %d, want %d", ErrUnsupportedVersion, env.Version, formatVersion)
	}
	if digest(env.Compressed) != env.Digest {
		return nil, ErrCorruptEnvelope
	}
	if env.Signed() {
		if err := Verify(env); err != nil {
			return nil, err
		}
	}

	payload, err := decompress(env.Compressed, int(env.UncompressedSize))
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress: %w", err)
	}

	items, err := decodeCBOR(payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot: cbor decode: %w", err)
	}

	return rtv.FromSlice(items).Freeze(), nil
}

// Verify checks env's signature against its embedded public key and
// digest. It returns ErrNotSigned if env carries no signature.
func Verify(env *Envelope) error {
	if !env.Signed() {
		return ErrNotSigned
	}
	pubKey, err := btcec.ParsePubKey(env.PublicKey)
	if err != nil {
		return fmt.Errorf("%w: bad public key: %v", ErrSignatureInvalid, err)
	}
	sig, err := ecdsa.ParseDERSignature(env.Signature)
	if err != nil {
		return fmt.Errorf("%w: bad signature encoding: %v", ErrSignatureInvalid, err)
	}
	if !sig.Verify(env.Digest[:], pubKey) {
		return ErrSignatureInvalid
	}
	return nil
}

// digest computes RIPEMD160(SHA256(payload)), following this repository's
// two-hash account/node ID construction.
func digest(payload []byte) [20]byte {
	sum := sha256.Sum256(payload)
	h := ripemd160.New()
	h.Write(sum[:])
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

func compress(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return []byte{}, nil
	}
	compressed := make([]byte, lz4.CompressBlockBound(len(payload)))
	n, err := lz4.CompressBlock(payload, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// lz4 reports n==0 when the input was incompressible; store it
		// verbatim behind a leading 0 marker byte so decompress can tell.
		return append([]byte{0}, payload...), nil
	}
	return append([]byte{1}, compressed[:n]...), nil
}

func decompress(data []byte, uncompressedSize int) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	marker, body := data[0], data[1:]
	if marker == 0 {
		return body, nil
	}
	out := make([]byte, uncompressedSize)
	n, err := lz4.UncompressBlock(body, out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

func encodeCBOR(f *rtv.Frozen[Item]) ([]byte, error) {
	raw := make([][]byte, 0, f.Size())
	it := f.Values()
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		raw = append(raw, []byte(x))
	}

	var buf bytes.Buffer
	enc := codec.NewEncoder(&buf, cborHandle())
	if err := enc.Encode(raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeCBOR(payload []byte) ([]Item, error) {
	var raw [][]byte
	dec := codec.NewDecoder(bytes.NewReader(payload), cborHandle())
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	items := make([]Item, len(raw))
	for i, b := range raw {
		items[i] = Item(b)
	}
	return items, nil
}

func cborHandle() *codec.CborHandle {
	h := &codec.CborHandle{}
	return h
}

// Marshal serialises env to the flat on-disk/wire layout the blob store
// and the CLI's export/import commands both use:
//
//	version(1) | uncompressedSize(4) | digest(20) | sigLen(2) | sig |
//	pubKeyLen(1) | pubKey | compressed...
func (env *Envelope) Marshal() []byte {
	buf := make([]byte, 0, 1+4+20+2+len(env.Signature)+1+len(env.PublicKey)+len(env.Compressed))
	buf = append(buf, env.Version)
	var sizeBuf [4]byte
	binary.BigEndian.PutUint32(sizeBuf[:], env.UncompressedSize)
	buf = append(buf, sizeBuf[:]...)
	buf = append(buf, env.Digest[:]...)

	var sigLenBuf [2]byte
	binary.BigEndian.PutUint16(sigLenBuf[:], uint16(len(env.Signature)))
	buf = append(buf, sigLenBuf[:]...)
	buf = append(buf, env.Signature...)

	buf = append(buf, byte(len(env.PublicKey)))
	buf = append(buf, env.PublicKey...)

	buf = append(buf, env.Compressed...)
	return buf
}

// Unmarshal reverses Marshal. It does not itself verify the digest or
// signature; call Decode for that.
func Unmarshal(buf []byte) (*Envelope, error) {
	if len(buf) < 1+4+20+2+1 {
		return nil, fmt.Errorf("%w: header too short", ErrCorruptEnvelope)
	}
	env := &Envelope{Version: buf[0]}
	env.UncompressedSize = binary.BigEndian.Uint32(buf[1:5])
	copy(env.Digest[:], buf[5:25])
	buf = buf[25:]

	sigLen := int(binary.BigEndian.Uint16(buf[:2]))
	buf = buf[2:]
	if len(buf) < sigLen {
		return nil, fmt.Errorf("%w: truncated signature", ErrCorruptEnvelope)
	}
	if sigLen > 0 {
		env.Signature = append([]byte(nil), buf[:sigLen]...)
	}
	buf = buf[sigLen:]

	if len(buf) < 1 {
		return nil, fmt.Errorf("%w: truncated public key length", ErrCorruptEnvelope)
	}
	pubKeyLen := int(buf[0])
	buf = buf[1:]
	if len(buf) < pubKeyLen {
		return nil, fmt.Errorf("%w: truncated public key", ErrCorruptEnvelope)
	}
	if pubKeyLen > 0 {
		env.PublicKey = append([]byte(nil), buf[:pubKeyLen]...)
	}
	buf = buf[pubKeyLen:]

	env.Compressed = append([]byte(nil), buf...)
	return env, nil
}
