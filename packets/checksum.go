// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package packets

// onesComplementSum adds up data as big-endian 16-bit words and folds the carries.
// A trailing odd byte is the high byte of a zero-padded word.
func onesComplementSum(data []byte) uint16 {
	var sum uint32
	n := len(data)
	for i := 0; i+1 < n; i += 2 {
		sum += uint32(data[i])<<8 | uint32(data[i+1])
	}
	if n%2 == 1 {
		sum += uint32(data[n-1]) << 8
	}
	for sum>>16 != 0 {
		sum = (sum & 0xffff) + (sum >> 16)
	}
	return uint16(sum)
}

// Checksum computes the RFC 1071 Internet checksum of data. The caller is
// responsible for zeroing the checksum field of a header before calling it.
func Checksum(data []byte) uint16 {
	return ^onesComplementSum(data)
}

// VerifyChecksum reports whether data, checksum field included, sums to 0xffff
func VerifyChecksum(data []byte) bool {
	return onesComplementSum(data) == 0xffff
}
