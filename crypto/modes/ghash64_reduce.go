package modes

// reduceTable is the precomputed reduction table used by blockMul256: for
// a given trailing byte value, the 16-bit value to fold back into the
// bottom of the block after a one-byte left shift under the GCM-64
// polynomial x^64+x^4+x^3+x+1.
//
// This is the portable, byte-order-independent form of the table (the
// original also offers a little-endian-specific variant with a different
// table; SPEC_FULL.md §5 documents why only the portable form is carried
// here).
// Reference: original_source/gcm_64.c, block_mul256's reduce_table (the
// #if 1 portable definition).
var reduceTable = [256]uint16{
	0x0000, 0x01B0, 0x0360, 0x02D0, 0x06C0, 0x0770, 0x05A0, 0x0410, 0x0D80, 0x0C30, 0x0EE0, 0x0F50, 0x0B40, 0x0AF0, 0x0820, 0x0990,
	0x1B00, 0x1AB0, 0x1860, 0x19D0, 0x1DC0, 0x1C70, 0x1EA0, 0x1F10, 0x1680, 0x1730, 0x15E0, 0x1450, 0x1040, 0x11F0, 0x1320, 0x1290,
	0x3600, 0x37B0, 0x3560, 0x34D0, 0x30C0, 0x3170, 0x33A0, 0x3210, 0x3B80, 0x3A30, 0x38E0, 0x3950, 0x3D40, 0x3CF0, 0x3E20, 0x3F90,
	0x2D00, 0x2CB0, 0x2E60, 0x2FD0, 0x2BC0, 0x2A70, 0x28A0, 0x2910, 0x2080, 0x2130, 0x23E0, 0x2250, 0x2640, 0x27F0, 0x2520, 0x2490,
	0x6C00, 0x6DB0, 0x6F60, 0x6ED0, 0x6AC0, 0x6B70, 0x69A0, 0x6810, 0x6180, 0x6030, 0x62E0, 0x6350, 0x6740, 0x66F0, 0x6420, 0x6590,
	0x7700, 0x76B0, 0x7460, 0x75D0, 0x71C0, 0x7070, 0x72A0, 0x7310, 0x7A80, 0x7B30, 0x79E0, 0x7850, 0x7C40, 0x7DF0, 0x7F20, 0x7E90,
	0x5A00, 0x5BB0, 0x5960, 0x58D0, 0x5CC0, 0x5D70, 0x5FA0, 0x5E10, 0x5780, 0x5630, 0x54E0, 0x5550, 0x5140, 0x50F0, 0x5220, 0x5390,
	0x4100, 0x40B0, 0x4260, 0x43D0, 0x47C0, 0x4670, 0x44A0, 0x4510, 0x4C80, 0x4D30, 0x4FE0, 0x4E50, 0x4A40, 0x4BF0, 0x4920, 0x4890,
	0xD800, 0xD9B0, 0xDB60, 0xDAD0, 0xDEC0, 0xDF70, 0xDDA0, 0xDC10, 0xD580, 0xD430, 0xD6E0, 0xD750, 0xD340, 0xD2F0, 0xD020, 0xD190,
	0xC300, 0xC2B0, 0xC060, 0xC1D0, 0xC5C0, 0xC470, 0xC6A0, 0xC710, 0xCE80, 0xCF30, 0xCDE0, 0xCC50, 0xC840, 0xC9F0, 0xCB20, 0xCA90,
	0xEE00, 0xEFB0, 0xED60, 0xECD0, 0xE8C0, 0xE970, 0xEBA0, 0xEA10, 0xE380, 0xE230, 0xE0E0, 0xE150, 0xE540, 0xE4F0, 0xE620, 0xE790,
	0xF500, 0xF4B0, 0xF660, 0xF7D0, 0xF3C0, 0xF270, 0xF0A0, 0xF110, 0xF880, 0xF930, 0xFBE0, 0xFA50, 0xFE40, 0xFFF0, 0xFD20, 0xFC90,
	0xB400, 0xB5B0, 0xB760, 0xB6D0, 0xB2C0, 0xB370, 0xB1A0, 0xB010, 0xB980, 0xB830, 0xBAE0, 0xBB50, 0xBF40, 0xBEF0, 0xBC20, 0xBD90,
	0xAF00, 0xAEB0, 0xAC60, 0xADD0, 0xA9C0, 0xA870, 0xAAA0, 0xAB10, 0xA280, 0xA330, 0xA1E0, 0xA050, 0xA440, 0xA5F0, 0xA720, 0xA690,
	0x8200, 0x83B0, 0x8160, 0x80D0, 0x84C0, 0x8570, 0x87A0, 0x8610, 0x8F80, 0x8E30, 0x8CE0, 0x8D50, 0x8940, 0x88F0, 0x8A20, 0x8B90,
	0x9900, 0x98B0, 0x9A60, 0x9BD0, 0x9FC0, 0x9E70, 0x9CA0, 0x9D10, 0x9480, 0x9530, 0x97E0, 0x9650, 0x9240, 0x93F0, 0x9120, 0x9090,
}
