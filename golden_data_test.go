// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

// narcPlain is a small NARC archive holding one text file.
var narcPlain = []byte{
	0x4e, 0x41, 0x52, 0x43, 0xfe, 0xff, 0x00, 0x01, 0xfc, 0x01, 0x00, 0x00,
	0x10, 0x00, 0x03, 0x00, 0x42, 0x54, 0x41, 0x46, 0x14, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x91, 0x01, 0x00, 0x00,
	0x42, 0x54, 0x4e, 0x46, 0x3c, 0x00, 0x00, 0x00, 0x18, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x03, 0x00, 0x2f, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0xf0,
	0x30, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0xf0, 0x83, 0x46, 0x6f, 0x6f,
	0x01, 0xf0, 0x83, 0x42, 0x61, 0x72, 0x02, 0xf0, 0x09, 0x64, 0x75, 0x6d,
	0x6d, 0x79, 0x2e, 0x74, 0x78, 0x74, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff,
	0x47, 0x4d, 0x49, 0x46, 0x9c, 0x01, 0x00, 0x00, 0x41, 0x63, 0x63, 0x6f,
	0x72, 0x64, 0x69, 0x6e, 0x67, 0x20, 0x74, 0x6f, 0x20, 0x61, 0x6c, 0x6c,
	0x20, 0x6b, 0x6e, 0x6f, 0x77, 0x6e, 0x20, 0x6c, 0x61, 0x77, 0x73, 0x0d,
	0x0a, 0x6f, 0x66, 0x20, 0x61, 0x76, 0x69, 0x61, 0x74, 0x69, 0x6f, 0x6e,
	0x2c, 0x0d, 0x0a, 0x0d, 0x0a, 0x20, 0x20, 0x0d, 0x0a, 0x74, 0x68, 0x65,
	0x72, 0x65, 0x20, 0x69, 0x73, 0x20, 0x6e, 0x6f, 0x20, 0x77, 0x61, 0x79,
	0x20, 0x61, 0x20, 0x62, 0x65, 0x65, 0x0d, 0x0a, 0x73, 0x68, 0x6f, 0x75,
	0x6c, 0x64, 0x20, 0x62, 0x65, 0x20, 0x61, 0x62, 0x6c, 0x65, 0x20, 0x74,
	0x6f, 0x20, 0x66, 0x6c, 0x79, 0x2e, 0x0d, 0x0a, 0x0d, 0x0a, 0x20, 0x20,
	0x0d, 0x0a, 0x49, 0x74, 0x73, 0x20, 0x77, 0x69, 0x6e, 0x67, 0x73, 0x20,
	0x61, 0x72, 0x65, 0x20, 0x74, 0x6f, 0x6f, 0x20, 0x73, 0x6d, 0x61, 0x6c,
	0x6c, 0x20, 0x74, 0x6f, 0x20, 0x67, 0x65, 0x74, 0x0d, 0x0a, 0x69, 0x74,
	0x73, 0x20, 0x66, 0x61, 0x74, 0x20, 0x6c, 0x69, 0x74, 0x74, 0x6c, 0x65,
	0x20, 0x62, 0x6f, 0x64, 0x79, 0x20, 0x6f, 0x66, 0x66, 0x20, 0x74, 0x68,
	0x65, 0x20, 0x67, 0x72, 0x6f, 0x75, 0x6e, 0x64, 0x2e, 0x0d, 0x0a, 0x0d,
	0x0a, 0x20, 0x20, 0x0d, 0x0a, 0x54, 0x68, 0x65, 0x20, 0x62, 0x65, 0x65,
	0x2c, 0x20, 0x6f, 0x66, 0x20, 0x63, 0x6f, 0x75, 0x72, 0x73, 0x65, 0x2c,
	0x20, 0x66, 0x6c, 0x69, 0x65, 0x73, 0x20, 0x61, 0x6e, 0x79, 0x77, 0x61,
	0x79, 0x0d, 0x0a, 0x0d, 0x0a, 0x20, 0x20, 0x0d, 0x0a, 0x62, 0x65, 0x63,
	0x61, 0x75, 0x73, 0x65, 0x20, 0x62, 0x65, 0x65, 0x73, 0x20, 0x64, 0x6f,
	0x6e, 0x27, 0x74, 0x20, 0x63, 0x61, 0x72, 0x65, 0x0d, 0x0a, 0x77, 0x68,
	0x61, 0x74, 0x20, 0x68, 0x75, 0x6d, 0x61, 0x6e, 0x73, 0x20, 0x74, 0x68,
	0x69, 0x6e, 0x6b, 0x20, 0x69, 0x73, 0x20, 0x69, 0x6d, 0x70, 0x6f, 0x73,
	0x73, 0x69, 0x62, 0x6c, 0x65, 0x2e, 0x0d, 0x0a, 0x0d, 0x0a, 0x20, 0x20,
	0x0d, 0x0a, 0x59, 0x65, 0x6c, 0x6c, 0x6f, 0x77, 0x2c, 0x20, 0x62, 0x6c,
	0x61, 0x63, 0x6b, 0x2e, 0x20, 0x59, 0x65, 0x6c, 0x6c, 0x6f, 0x77, 0x2c,
	0x20, 0x62, 0x6c, 0x61, 0x63, 0x6b, 0x2e, 0x0d, 0x0a, 0x59, 0x65, 0x6c,
	0x6c, 0x6f, 0x77, 0x2c, 0x20, 0x62, 0x6c, 0x61, 0x63, 0x6b, 0x2e, 0x20,
	0x59, 0x65, 0x6c, 0x6c, 0x6f, 0x77, 0x2c, 0x20, 0x62, 0x6c, 0x61, 0x63,
	0x6b, 0x2e, 0x0d, 0x0a, 0x0d, 0x0a, 0x20, 0x20, 0x0d, 0x0a, 0x4f, 0x6f,
	0x68, 0x2c, 0x20, 0x62, 0x6c, 0x61, 0x63, 0x6b, 0x20, 0x61, 0x6e, 0x64,
	0x20, 0x79, 0x65, 0x6c, 0x6c, 0x6f, 0x77, 0x21, 0x0d, 0x0a, 0x4c, 0x65,
	0x74, 0x27, 0x73, 0x20, 0x73, 0x68, 0x61, 0x6b, 0x65, 0x20, 0x69, 0x74,
	0x20, 0x75, 0x70, 0x20, 0x61, 0x20, 0x6c, 0x69, 0x74, 0x74, 0x6c, 0x65,
	0x2e, 0xff, 0xff, 0xff,
}

// narcYaz0 is narcPlain as compressed by a reference Yaz0 encoder.
var narcYaz0 = []byte{
	0x59, 0x61, 0x7a, 0x30, 0x00, 0x00, 0x01, 0xfc, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0x4e, 0x41, 0x52, 0x43, 0xfe, 0xff, 0x00,
	0x01, 0xff, 0xfc, 0x01, 0x00, 0x00, 0x10, 0x00, 0x03, 0x00, 0xff, 0x42,
	0x54, 0x41, 0x46, 0x14, 0x00, 0x00, 0x00, 0x2f, 0x10, 0x0e, 0x30, 0x01,
	0x91, 0x10, 0x17, 0x42, 0x54, 0x4e, 0x46, 0xae, 0x3c, 0x10, 0x13, 0x18,
	0x30, 0x13, 0x03, 0x00, 0x2f, 0x40, 0x1f, 0xdf, 0xf0, 0x30, 0x50, 0x07,
	0x83, 0x46, 0x6f, 0x6f, 0x01, 0xff, 0xf0, 0x83, 0x42, 0x61, 0x72, 0x02,
	0xf0, 0x09, 0xff, 0x64, 0x75, 0x6d, 0x6d, 0x79, 0x2e, 0x74, 0x78, 0xbf,
	0x74, 0x10, 0x44, 0xff, 0xff, 0xff, 0x47, 0x4d, 0x49, 0xdf, 0x46, 0x9c,
	0x10, 0x5b, 0x41, 0x63, 0x63, 0x6f, 0x72, 0xff, 0x64, 0x69, 0x6e, 0x67,
	0x20, 0x74, 0x6f, 0x20, 0xff, 0x61, 0x6c, 0x6c, 0x20, 0x6b, 0x6e, 0x6f,
	0x77, 0xff, 0x6e, 0x20, 0x6c, 0x61, 0x77, 0x73, 0x0d, 0x0a, 0xff, 0x6f,
	0x66, 0x20, 0x61, 0x76, 0x69, 0x61, 0x74, 0xff, 0x69, 0x6f, 0x6e, 0x2c,
	0x0d, 0x0a, 0x0d, 0x0a, 0xff, 0x20, 0x20, 0x0d, 0x0a, 0x74, 0x68, 0x65,
	0x72, 0xff, 0x65, 0x20, 0x69, 0x73, 0x20, 0x6e, 0x6f, 0x20, 0xff, 0x77,
	0x61, 0x79, 0x20, 0x61, 0x20, 0x62, 0x65, 0xff, 0x65, 0x0d, 0x0a, 0x73,
	0x68, 0x6f, 0x75, 0x6c, 0xbe, 0x64, 0x10, 0x0b, 0x20, 0x61, 0x62, 0x6c,
	0x65, 0x20, 0x4c, 0xf7, 0x66, 0x6c, 0x79, 0x2e, 0x60, 0x34, 0x49, 0x74,
	0x73, 0xdd, 0x20, 0x77, 0x10, 0x64, 0x73, 0x20, 0x61, 0x10, 0x3c, 0x74,
	0xf9, 0x6f, 0x6f, 0x20, 0x73, 0x6d, 0x20, 0x6c, 0x10, 0x73, 0x67, 0xfb,
	0x65, 0x74, 0x0d, 0x0a, 0x69, 0x10, 0x1f, 0x66, 0x61, 0xfd, 0x74, 0x20,
	0x6c, 0x69, 0x74, 0x74, 0x10, 0x3d, 0x62, 0xff, 0x6f, 0x64, 0x79, 0x20,
	0x6f, 0x66, 0x66, 0x20, 0x7f, 0x10, 0x6c, 0x20, 0x67, 0x72, 0x6f, 0x75,
	0x6e, 0x64, 0x4b, 0x70, 0x4a, 0x54, 0x10, 0x12, 0x10, 0x71, 0x2c, 0x10,
	0x1f, 0x20, 0x63, 0xf7, 0x6f, 0x75, 0x72, 0x73, 0x10, 0x0a, 0x66, 0x6c,
	0x69, 0xb3, 0x65, 0x10, 0x5a, 0x6e, 0x79, 0x10, 0x90, 0x60, 0xa7, 0x62,
	0x65, 0xf7, 0x63, 0x61, 0x75, 0x73, 0x30, 0x2b, 0x73, 0x20, 0x64, 0xfd,
	0x6f, 0x6e, 0x27, 0x74, 0x20, 0x63, 0x10, 0x7c, 0x0d, 0xef, 0x0a, 0x77,
	0x68, 0x10, 0x68, 0x68, 0x75, 0x6d, 0x61, 0xdd, 0x6e, 0x73, 0x10, 0x5f,
	0x69, 0x6e, 0x6b, 0x20, 0xcc, 0x69, 0xfc, 0x6d, 0x70, 0x6f, 0x73, 0x73,
	0x69, 0x10, 0xba, 0x70, 0xb3, 0xff, 0x59, 0x65, 0x6c, 0x6c, 0x6f, 0x77,
	0x2c, 0x20, 0xfe, 0x62, 0x6c, 0x61, 0x63, 0x6b, 0x2e, 0x20, 0xc0, 0x0e,
	0x39, 0x00, 0x1e, 0x0f, 0x41, 0x2c, 0x4f, 0x6f, 0x68, 0x50, 0x40, 0x10,
	0x9d, 0x64, 0xdf, 0x20, 0x79, 0x30, 0x52, 0x21, 0x0d, 0x0a, 0x4c, 0x65,
	0xff, 0x74, 0x27, 0x73, 0x20, 0x73, 0x68, 0x61, 0x6b, 0x79, 0x11, 0x4a,
	0x74, 0x20, 0x75, 0x70, 0x11, 0x46, 0x40, 0xfb, 0x2e, 0x00, 0x11, 0x9b,
}
