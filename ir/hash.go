package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// seed is shared so hashes agree for the life of the process.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of v consistent with Equal.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	v.hash(&h)
	return h.Sum64()
}

func (v Value) hash(h *maphash.Hash) {
	var b [8]byte
	h.WriteByte(byte(v.Type))
	switch v.Type {
	case BoolType:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case CharType:
		binary.LittleEndian.PutUint32(b[:4], uint32(v.Char))
		h.Write(b[:4])
	case MapType:
		for k, val := range v.Map.All() {
			k.hash(h)
			val.hash(h)
		}
	case NumberType:
		if i, ok := v.Number.Int64(); ok {
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], uint64(i))
		} else {
			h.WriteByte(1)
			f := v.Number.AsFloat()
			switch {
			case math.IsNaN(f):
				f = math.NaN()
			case f == 0:
				f = 0
			}
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		}
		h.Write(b[:])
	case OptionType:
		if v.Option != nil {
			h.WriteByte(1)
			v.Option.hash(h)
		} else {
			h.WriteByte(0)
		}
	case StringType:
		h.WriteString(v.String)
		h.WriteByte(0)
	case SeqType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(v.Seq)))
		h.Write(b[:])
		for i := range v.Seq {
			v.Seq[i].hash(h)
		}
	}
}
