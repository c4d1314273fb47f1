// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package rtprtcp

import (
	"fmt"

	"github.com/q191201771/lalrtcp/pkg/base"
	"github.com/q191201771/naza/pkg/bele"
)

// --------------------------------------
// rfc3550 6.4 common header of every rtcp
// --------------------------------------
//
//         0                   1                   2                   3
//         0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// header |V=2|P|  RC/FMT |      PT       |             length            |
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//        :                            payload                            :
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// length是整个包以32位为单位的长度减1，包含包头和padding，
// 也即payload（包含padding）的字节数为length*4
//
// padding标志为1时，payload的最后一个字节表示padding的字节数（包含自身）

const (
	RtcpPacketTypeSr    = 200 // 0xc8 Sender Report
	RtcpPacketTypeRr    = 201 // 0xc9 Receiver Report
	RtcpPacketTypeSdes  = 202 // 0xca Source Description
	RtcpPacketTypeBye   = 203 // 0xcb Goodbye
	RtcpPacketTypeApp   = 204 // 0xcc Application-Defined
	RtcpPacketTypeRtpfb = 205 // 0xcd Transport layer feedback, rfc4585
	RtcpPacketTypePsfb  = 206 // 0xce Payload-specific feedback, rfc4585

	RtcpHeaderLength = 4

	RtcpVersion = 2

	// RtcpMaxCount RC/FMT字段只有5位
	RtcpMaxCount = 31

	// RtcpMaxPayloadLength length字段只有16位
	RtcpMaxPayloadLength = 0xFFFF * 4
)

type RtcpHeader struct {
	Version       uint8  // 2b
	Padding       uint8  // 1b
	CountOrFormat uint8  // 5b
	PacketType    uint8  // 8b
	Length        uint16 // 16b, whole packet byte length = (Length+1) * 4
}

// ParseRtcpHeader
//
// 只解析字段，不检查version，检查由调用方决定
//
// @param b: 至少4字节，多余的字节被忽略
func ParseRtcpHeader(b []byte) (RtcpHeader, error) {
	var h RtcpHeader
	if len(b) < RtcpHeaderLength {
		return h, base.NewRtcpError(base.ErrRtcpTruncated, 0, -1)
	}
	h.Version = b[0] >> 6
	h.Padding = (b[0] >> 5) & 0x1
	h.CountOrFormat = b[0] & 0x1F
	h.PacketType = b[1]
	h.Length = bele.BeUint16(b[2:])
	return h, nil
}

// PackTo @param out 传出参数，注意，调用方保证长度>=4
func (r *RtcpHeader) PackTo(out []byte) {
	out[0] = r.Version<<6 | (r.Padding&0x1)<<5 | (r.CountOrFormat & 0x1F)
	out[1] = r.PacketType
	bele.BePutUint16(out[2:], r.Length)
}

// PayloadLength 包头之后的字节数，包含padding
func (r *RtcpHeader) PayloadLength() int {
	return int(r.Length) * 4
}

func (r RtcpHeader) String() string {
	return fmt.Sprintf("H(v=%d p=%d rc=%d pt=%d l=%d)", r.Version, r.Padding, r.CountOrFormat, r.PacketType, r.Length)
}

// RtcpPacketTypeName 用于日志以及统计
func RtcpPacketTypeName(packetType uint8) string {
	switch packetType {
	case RtcpPacketTypeSr:
		return "SR"
	case RtcpPacketTypeRr:
		return "RR"
	case RtcpPacketTypeSdes:
		return "SDES"
	case RtcpPacketTypeBye:
		return "BYE"
	case RtcpPacketTypeApp:
		return "APP"
	case RtcpPacketTypeRtpfb:
		return "RTPFB"
	case RtcpPacketTypePsfb:
		return "PSFB"
	}
	return fmt.Sprintf("PT%d", packetType)
}
