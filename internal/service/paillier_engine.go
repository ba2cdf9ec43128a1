package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// Engine-level failures surfaced through VerifyAndDecode / Add / Decrypt.
var (
	ErrEmptyProof          = errors.New("empty integrity proof")
	ErrProofMismatch       = errors.New("proof does not attest ciphertext and submitter")
	ErrMalformedCiphertext = errors.New("ciphertext is not a valid group element")
	ErrPlaintextOverflow   = errors.New("decrypted value exceeds the 64-bit domain")
)

var bigOne = big.NewInt(1)

// PaillierEngine implements ports.EncryptionEngine and ports.DecryptionOracle
// with the Paillier cryptosystem: ciphertexts are elements of Z*_{n²} and
// multiplying two of them yields the encryption of the sum of their
// plaintexts. The engine holds the trapdoor (lambda, mu), which makes it
// suitable for development and test deployments only; production setups keep
// the trapdoor in an external decryption oracle behind the same ports.
//
// The integrity proof is a SHA-256 binding of ciphertext and submitter,
// compared in constant time. It attests origin the way a real engine's
// zero-knowledge verification would, without the cryptographic weight.
type PaillierEngine struct {
	n      *big.Int
	n2     *big.Int
	g      *big.Int // n+1, the standard generator
	lambda *big.Int
	mu     *big.Int
}

// NewPaillierEngine generates a fresh keypair with an n of the given bit
// size. 2048 is the deployment default; tests use smaller moduli.
func NewPaillierEngine(bits int) (*PaillierEngine, error) {
	if bits < 256 {
		return nil, fmt.Errorf("modulus too small: %d bits", bits)
	}

	var p, q *big.Int
	for {
		var err error
		p, err = rand.Prime(rand.Reader, bits/2)
		if err != nil {
			return nil, fmt.Errorf("generating prime p: %w", err)
		}
		q, err = rand.Prime(rand.Reader, bits/2)
		if err != nil {
			return nil, fmt.Errorf("generating prime q: %w", err)
		}
		if p.Cmp(q) != 0 {
			break
		}
	}

	n := new(big.Int).Mul(p, q)
	n2 := new(big.Int).Mul(n, n)
	g := new(big.Int).Add(n, bigOne)

	pm1 := new(big.Int).Sub(p, bigOne)
	qm1 := new(big.Int).Sub(q, bigOne)
	gcd := new(big.Int).GCD(nil, nil, pm1, qm1)
	lambda := new(big.Int).Mul(pm1, qm1)
	lambda.Div(lambda, gcd) // lcm(p-1, q-1)

	// mu = (L(g^lambda mod n²))⁻¹ mod n
	u := new(big.Int).Exp(g, lambda, n2)
	mu := new(big.Int).ModInverse(lFunc(u, n), n)
	if mu == nil {
		return nil, fmt.Errorf("keypair degenerate: L(g^lambda) not invertible")
	}

	return &PaillierEngine{n: n, n2: n2, g: g, lambda: lambda, mu: mu}, nil
}

// lFunc is Paillier's L(x) = (x-1)/n.
func lFunc(x, n *big.Int) *big.Int {
	r := new(big.Int).Sub(x, bigOne)
	return r.Div(r, n)
}

// Encrypt produces a fresh ciphertext of value. Each call draws new
// randomness, so encrypting the same value twice yields distinct
// ciphertexts and therefore distinct handles.
func (e *PaillierEngine) Encrypt(value uint64) ([]byte, error) {
	m := new(big.Int).SetUint64(value)
	r, err := e.randomUnit()
	if err != nil {
		return nil, err
	}

	// c = g^m * r^n mod n²
	c := new(big.Int).Exp(e.g, m, e.n2)
	rn := new(big.Int).Exp(r, e.n, e.n2)
	c.Mul(c, rn).Mod(c, e.n2)
	return c.Bytes(), nil
}

// EncryptZero implements ports.EncryptionEngine.
func (e *PaillierEngine) EncryptZero() ([]byte, error) {
	return e.Encrypt(0)
}

// Add implements ports.EncryptionEngine: the product of two ciphertexts
// decrypts to the sum of their plaintexts.
func (e *PaillierEngine) Add(a, b []byte) ([]byte, error) {
	ca, err := e.checkCiphertext(a)
	if err != nil {
		return nil, err
	}
	cb, err := e.checkCiphertext(b)
	if err != nil {
		return nil, err
	}

	sum := new(big.Int).Mul(ca, cb)
	sum.Mod(sum, e.n2)
	return sum.Bytes(), nil
}

// ToExternalHandle implements ports.EncryptionEngine.
func (e *PaillierEngine) ToExternalHandle(ct []byte) domain.Handle {
	return domain.HandleOf(ct)
}

// VerifyAndDecode implements ports.EncryptionEngine. The external and
// internal representations coincide for this engine; the work here is proof
// verification and group-membership sanity.
func (e *PaillierEngine) VerifyAndDecode(external []byte, proof string, submitter uuid.UUID) ([]byte, error) {
	if proof == "" {
		return nil, ErrEmptyProof
	}
	expected := ProofFor(external, submitter)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(proof)) != 1 {
		return nil, ErrProofMismatch
	}

	c, err := e.checkCiphertext(external)
	if err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

// Decrypt implements ports.DecryptionOracle. Values outside the 64-bit
// domain are rejected rather than wrapped.
func (e *PaillierEngine) Decrypt(ct []byte) (uint64, error) {
	c, err := e.checkCiphertext(ct)
	if err != nil {
		return 0, err
	}

	u := new(big.Int).Exp(c, e.lambda, e.n2)
	m := lFunc(u, e.n)
	m.Mul(m, e.mu).Mod(m, e.n)

	if !m.IsUint64() {
		return 0, ErrPlaintextOverflow
	}
	return m.Uint64(), nil
}

// PublicKeyHex exports n for off-process encryption clients.
func (e *PaillierEngine) PublicKeyHex() string {
	return hex.EncodeToString(e.n.Bytes())
}

// checkCiphertext enforces 1 < c < n² and gcd(c, n²) = 1, the standard
// Paillier sanity conditions.
func (e *PaillierEngine) checkCiphertext(raw []byte) (*big.Int, error) {
	if len(raw) == 0 {
		return nil, ErrMalformedCiphertext
	}
	c := new(big.Int).SetBytes(raw)
	if c.Cmp(bigOne) <= 0 || c.Cmp(e.n2) >= 0 {
		return nil, ErrMalformedCiphertext
	}
	if new(big.Int).GCD(nil, nil, c, e.n2).Cmp(bigOne) != 0 {
		return nil, ErrMalformedCiphertext
	}
	return c, nil
}

// randomUnit draws r in [1, n) with gcd(r, n) = 1.
func (e *PaillierEngine) randomUnit() (*big.Int, error) {
	for {
		r, err := rand.Int(rand.Reader, e.n)
		if err != nil {
			return nil, fmt.Errorf("drawing randomness: %w", err)
		}
		if r.Sign() > 0 && new(big.Int).GCD(nil, nil, r, e.n).Cmp(bigOne) == 0 {
			return r, nil
		}
	}
}

// ProofFor computes the submitter-binding proof for an external ciphertext.
// Clients compute the same value when submitting.
func ProofFor(external []byte, submitter uuid.UUID) string {
	h := sha256.New()
	h.Write(external)
	h.Write(submitter[:])
	return hex.EncodeToString(h.Sum(nil))
}
