/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package itokensjwt

const (
	SecretKeyLength  = 64
	SecretKeyJWTName = "secretKeyJWT"
	issuer           = "websecurity"
)

var SecretKeyExample = SecretKeyType{
	0x7e, 0x2a, 0x91, 0x4f, 0x0c, 0xd3, 0x58, 0xb6, 0x13, 0xe7, 0x6a, 0x29, 0xf0, 0x84, 0x3d, 0xc5,
	0x52, 0x9b, 0x06, 0xee, 0x71, 0x1f, 0xa8, 0x4c, 0xd9, 0x35, 0x67, 0x02, 0xbb, 0x8e, 0x40, 0xf3,
	0x1a, 0x6d, 0xc2, 0x97, 0x3b, 0xe0, 0x55, 0x8f, 0x24, 0xb1, 0x0e, 0x79, 0xd6, 0x43, 0xaa, 0x18,
	0xcf, 0x62, 0x3e, 0x95, 0x07, 0xfb, 0x4a, 0xb8, 0x21, 0x8c, 0xe5, 0x50, 0x1d, 0xa3, 0x76, 0x0b,
}
