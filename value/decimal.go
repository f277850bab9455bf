package value

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/arloliu/tiny/errs"
)

// MaxDecimalScale is the largest number of fractional digits a Decimal holds.
const MaxDecimalScale = 28

const (
	decimalSignMask  = 0x80000000
	decimalScaleMask = 0x00FF0000
	decimalScaleBits = 16
)

// Decimal is a 128-bit decimal: a 96-bit unsigned mantissa split into Hi, Mid
// and Lo, scaled by 10^-scale, with scale and sign packed into Flags.
//
// The field order matches the encoded layout.
type Decimal struct {
	Flags uint32
	Hi    uint32
	Lo    uint32
	Mid   uint32
}

var maxMantissa = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1))

// NewDecimal builds a Decimal from a 96-bit mantissa, a scale in [0, 28] and
// a sign.
func NewDecimal(hi, mid, lo uint32, scale uint8, negative bool) (Decimal, error) {
	if scale > MaxDecimalScale {
		return Decimal{}, fmt.Errorf("%w: decimal scale %d exceeds %d", errs.ErrInvalidArgument, scale, MaxDecimalScale)
	}

	flags := uint32(scale) << decimalScaleBits
	if negative {
		flags |= decimalSignMask
	}

	return Decimal{Flags: flags, Hi: hi, Lo: lo, Mid: mid}, nil
}

// Scale returns the number of fractional digits.
func (d Decimal) Scale() int32 {
	return int32((d.Flags & decimalScaleMask) >> decimalScaleBits)
}

func (d Decimal) Negative() bool {
	return d.Flags&decimalSignMask != 0
}

// IsZero reports whether the mantissa is zero, regardless of sign and scale.
func (d Decimal) IsZero() bool {
	return d.Hi == 0 && d.Mid == 0 && d.Lo == 0
}

func (d Decimal) mantissa() *big.Int {
	m := new(big.Int).SetUint64(uint64(d.Hi))
	m.Lsh(m, 32)
	m.Or(m, new(big.Int).SetUint64(uint64(d.Mid)))
	m.Lsh(m, 32)
	m.Or(m, new(big.Int).SetUint64(uint64(d.Lo)))

	return m
}

// Decimal converts d to an arbitrary precision shopspring decimal.
func (d Decimal) Decimal() decimal.Decimal {
	m := d.mantissa()
	if d.Negative() {
		m.Neg(m)
	}

	return decimal.NewFromBigInt(m, -d.Scale())
}

func (d Decimal) String() string {
	return d.Decimal().String()
}

// FromDecimal converts v to a Decimal.
//
// Digits beyond 28 fractional places are rounded half away from zero. Values
// whose mantissa does not fit in 96 bits fail with errs.ErrInvalidArgument.
func FromDecimal(v decimal.Decimal) (Decimal, error) {
	if v.Exponent() < -MaxDecimalScale {
		v = v.Round(MaxDecimalScale)
	}

	coef := v.Coefficient()
	scale := int32(0)
	if exp := v.Exponent(); exp > 0 {
		coef.Mul(coef, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
	} else {
		scale = -exp
	}

	negative := coef.Sign() < 0
	coef.Abs(coef)

	// Drop trailing zeros until the mantissa fits, keeping the value exact.
	ten := big.NewInt(10)
	rem := new(big.Int)
	for coef.Cmp(maxMantissa) > 0 && scale > 0 {
		q, r := new(big.Int).QuoRem(coef, ten, rem)
		if r.Sign() != 0 {
			break
		}
		coef = q
		scale--
	}

	if coef.Cmp(maxMantissa) > 0 {
		return Decimal{}, fmt.Errorf("%w: %s does not fit in a 96-bit decimal", errs.ErrInvalidArgument, v.String())
	}

	words := make([]byte, 12)
	coef.FillBytes(words)
	hi := uint32(words[0])<<24 | uint32(words[1])<<16 | uint32(words[2])<<8 | uint32(words[3])
	mid := uint32(words[4])<<24 | uint32(words[5])<<16 | uint32(words[6])<<8 | uint32(words[7])
	lo := uint32(words[8])<<24 | uint32(words[9])<<16 | uint32(words[10])<<8 | uint32(words[11])

	return NewDecimal(hi, mid, lo, uint8(scale), negative)
}

// MustFromString parses s and panics if it is not a valid 96-bit decimal.
// Intended for constants and tests.
func MustFromString(s string) Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	d, err := FromDecimal(v)
	if err != nil {
		panic(err)
	}

	return d
}
