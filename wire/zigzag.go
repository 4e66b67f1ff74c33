package wire

// ZigZagEncode64 maps a signed 64-bit integer to an unsigned one so that
// small-magnitude values (positive or negative) produce small varints.
func ZigZagEncode64(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// ZigZagDecode64 is the inverse of ZigZagEncode64.
func ZigZagDecode64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// ZigZagEncode32 is the 32-bit narrowing of ZigZagEncode64.
func ZigZagEncode32(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31)
}

// ZigZagDecode32 is the inverse of ZigZagEncode32.
func ZigZagDecode32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}
