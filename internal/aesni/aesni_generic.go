package aesni

var software Provider = genericImpl{} //nolint:gochecknoglobals // stateless

// genericImpl is a bitsliced, pure Go implementation of the AES-NI round instructions.
//
// A 16-byte state is packed into eight 16-bit planes: bit i of plane k is bit k of byte i. Byte i sits in row i%4 and
// column i/4 of the AES state, so each nibble of a plane holds one column.
type genericImpl struct{}

func (genericImpl) Name() string {
	return "generic"
}

func (genericImpl) XOR(state, key *[16]byte) {
	for i := range 16 {
		state[i] ^= key[i]
	}
}

func (g genericImpl) Enc(state, key *[16]byte) {
	q := pack(state)
	q = subBytes(q)
	q = shiftRows(q)
	q = mixColumns(q)
	unpack(state, q)
	g.XOR(state, key)
}

func (g genericImpl) EncLast(state, key *[16]byte) {
	q := pack(state)
	q = subBytes(q)
	q = shiftRows(q)
	unpack(state, q)
	g.XOR(state, key)
}

func (g genericImpl) Dec(state, key *[16]byte) {
	q := pack(state)
	q = invShiftRows(q)
	q = invSubBytes(q)
	q = invMixColumns(q)
	unpack(state, q)
	g.XOR(state, key)
}

func (g genericImpl) DecLast(state, key *[16]byte) {
	q := pack(state)
	q = invShiftRows(q)
	q = invSubBytes(q)
	unpack(state, q)
	g.XOR(state, key)
}

func (genericImpl) InvMixColumns(state *[16]byte) {
	unpack(state, invMixColumns(pack(state)))
}

func (genericImpl) KeygenAssist(dst, src *[16]byte, rcon byte) {
	var s [16]byte
	unpack(&s, subBytes(pack(src)))

	// X1 is src[4:8], X3 is src[12:16].
	dst[0], dst[1], dst[2], dst[3] = s[4], s[5], s[6], s[7]
	dst[4], dst[5], dst[6], dst[7] = s[5]^rcon, s[6], s[7], s[4]
	dst[8], dst[9], dst[10], dst[11] = s[12], s[13], s[14], s[15]
	dst[12], dst[13], dst[14], dst[15] = s[13]^rcon, s[14], s[15], s[12]
}

func (g genericImpl) XOR8(states *[128]byte, key *[16]byte) {
	for i := 0; i < len(states); i += 16 {
		g.XOR((*[16]byte)(states[i:]), key)
	}
}

func (g genericImpl) Enc8(states *[128]byte, key *[16]byte) {
	for i := 0; i < len(states); i += 16 {
		g.Enc((*[16]byte)(states[i:]), key)
	}
}

func (g genericImpl) EncLast8(states *[128]byte, key *[16]byte) {
	for i := 0; i < len(states); i += 16 {
		g.EncLast((*[16]byte)(states[i:]), key)
	}
}

func (g genericImpl) Dec8(states *[128]byte, key *[16]byte) {
	for i := 0; i < len(states); i += 16 {
		g.Dec((*[16]byte)(states[i:]), key)
	}
}

func (g genericImpl) DecLast8(states *[128]byte, key *[16]byte) {
	for i := 0; i < len(states); i += 16 {
		g.DecLast((*[16]byte)(states[i:]), key)
	}
}

func pack(s *[16]byte) (q [8]uint16) {
	for i := range 16 {
		b := uint16(s[i])
		m := uint16(1) << i
		q[0] |= (b & 1) * m
		q[1] |= ((b >> 1) & 1) * m
		q[2] |= ((b >> 2) & 1) * m
		q[3] |= ((b >> 3) & 1) * m
		q[4] |= ((b >> 4) & 1) * m
		q[5] |= ((b >> 5) & 1) * m
		q[6] |= ((b >> 6) & 1) * m
		q[7] |= ((b >> 7) & 1) * m
	}
	return q
}

func unpack(s *[16]byte, q [8]uint16) {
	for i := range 16 {
		m := uint16(1) << i
		b := (q[0] & m) >> i
		b |= ((q[1] & m) >> i) << 1
		b |= ((q[2] & m) >> i) << 2
		b |= ((q[3] & m) >> i) << 3
		b |= ((q[4] & m) >> i) << 4
		b |= ((q[5] & m) >> i) << 5
		b |= ((q[6] & m) >> i) << 6
		b |= ((q[7] & m) >> i) << 7
		s[i] = byte(b)
	}
}

func shiftRows(q [8]uint16) [8]uint16 {
	// Row r moves left by r columns.
	rot := func(in uint16) uint16 {
		return (in & 0x1111) |
			((in & 0x2220) >> 4) | ((in & 0x0002) << 12) |
			((in & 0x4400) >> 8) | ((in & 0x0044) << 8) |
			((in & 0x0888) << 4) | ((in & 0x8000) >> 12)
	}
	for i := range 8 {
		q[i] = rot(q[i])
	}
	return q
}

func invShiftRows(q [8]uint16) [8]uint16 {
	// Row r moves right by r columns.
	rot := func(in uint16) uint16 {
		return (in & 0x1111) |
			((in & 0x0222) << 4) | ((in & 0x2000) >> 12) |
			((in & 0x4400) >> 8) | ((in & 0x0044) << 8) |
			((in & 0x8880) >> 4) | ((in & 0x0008) << 12)
	}
	for i := range 8 {
		q[i] = rot(q[i])
	}
	return q
}

// xtime multiplies every byte by 2 in GF(2^8).
func xtime(q [8]uint16) [8]uint16 {
	return [8]uint16{q[7], q[0] ^ q[7], q[1], q[2] ^ q[7], q[3] ^ q[7], q[4], q[5], q[6]}
}

// Rotations of the rows within each column: new row r takes old row r+n.
func rot1(x uint16) uint16 { return (x>>1)&0x7777 | (x&0x1111)<<3 }
func rot2(x uint16) uint16 { return (x>>2)&0x3333 | (x&0x3333)<<2 }
func rot3(x uint16) uint16 { return (x>>3)&0x1111 | (x&0x7777)<<1 }

func mixColumns(q [8]uint16) [8]uint16 {
	t := xtime(q)

	var r [8]uint16
	for k := range 8 {
		r[k] = t[k] ^ rot1(t[k]^q[k]) ^ rot2(q[k]) ^ rot3(q[k])
	}
	return r
}

func invMixColumns(q [8]uint16) [8]uint16 {
	// InvMixColumns = MixColumns * circ(05, 00, 04, 00), i.e. a_r ^= 4 * (a_r ^ a_{r+2}) first.
	var u [8]uint16
	for k := range 8 {
		u[k] = q[k] ^ rot2(q[k])
	}
	u = xtime(xtime(u))
	for k := range 8 {
		q[k] ^= u[k]
	}
	return mixColumns(q)
}

func mul(a, b [8]uint16) [8]uint16 {
	var p [15]uint16
	for i := range 8 {
		for j := range 8 {
			p[i+j] ^= a[i] & b[j]
		}
	}
	return reduce(&p)
}

func sq(a [8]uint16) [8]uint16 {
	var p [15]uint16
	for i := range 8 {
		p[2*i] = a[i]
	}
	return reduce(&p)
}

func reduce(p *[15]uint16) [8]uint16 {
	// Reduce modulo x^8 + x^4 + x^3 + x + 1
	for i := 14; i >= 8; i-- {
		v := p[i]
		p[i-4] ^= v
		p[i-5] ^= v
		p[i-7] ^= v
		p[i-8] ^= v
	}
	var res [8]uint16
	copy(res[:], p[:8])
	return res
}

func inv(a [8]uint16) [8]uint16 {
	// x^254 using addition chain
	x2 := sq(a)
	x4 := sq(x2)
	x8 := sq(x4)
	x16 := sq(x8)
	x32 := sq(x16)
	x64 := sq(x32)
	x128 := sq(x64)

	res := x2
	res = mul(res, x4)
	res = mul(res, x8)
	res = mul(res, x16)
	res = mul(res, x32)
	res = mul(res, x64)
	res = mul(res, x128)
	return res
}

func affine(a [8]uint16) [8]uint16 {
	var s [8]uint16
	for i := range 8 {
		s[i] = a[i] ^ a[(i+4)%8] ^ a[(i+5)%8] ^ a[(i+6)%8] ^ a[(i+7)%8]
	}
	// 0x63
	s[0] = ^s[0]
	s[1] = ^s[1]
	s[5] = ^s[5]
	s[6] = ^s[6]
	return s
}

func invAffine(a [8]uint16) [8]uint16 {
	var s [8]uint16
	for i := range 8 {
		s[i] = a[(i+2)%8] ^ a[(i+5)%8] ^ a[(i+7)%8]
	}
	// 0x05
	s[0] = ^s[0]
	s[2] = ^s[2]
	return s
}

func subBytes(q [8]uint16) [8]uint16 {
	return affine(inv(q))
}

func invSubBytes(q [8]uint16) [8]uint16 {
	return inv(invAffine(q))
}
