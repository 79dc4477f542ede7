package persist

// The CRC is CRC-16F/3: polynomial 0x1B2B, initial value 0xBD26, no
// reflection and no final XOR.
const (
	crcPoly    = 0x1B2B
	crcInitial = 0xBD26
)

var crcTable = makeCRCTable()

func makeCRCTable() (table [256]uint16) {
	for i := range table {
		crc := uint16(i) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPoly
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return
}

// Checksum computes the CRC-16 of b.
func Checksum(b []byte) uint16 {
	crc := uint16(crcInitial)
	for _, c := range b {
		crc = crc<<8 ^ crcTable[byte(crc>>8)^c]
	}
	return crc
}
