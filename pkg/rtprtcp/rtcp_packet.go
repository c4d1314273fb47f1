// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package rtprtcp

import (
	"encoding/hex"
	"fmt"

	"github.com/q191201771/lalrtcp/pkg/base"
	"github.com/q191201771/naza/pkg/nazabytes"
)

// IRtcpPacket 复合包中的单个rtcp包
//
// 具体类型只有以下几种，使用方通过type switch区分：
//
//   *Rr         解析了包体
//   *Sr         未解析包体，保留原始payload
//   *Sdes       同上
//   *Bye        同上
//   *Rtpfb      同上
//   *Psfb       同上
//   *OpaqueRtcp 其他未知类型（比如APP），保留原始payload
//
type IRtcpPacket interface {
	RtcpPacketType() uint8

	// Pack 打包成完整的rtcp包，包含包头以及padding
	Pack() ([]byte, error)
}

// RawRtcp 未解析包体的rtcp包
//
// Payload 不包含包头和padding
// Padding 原始的padding字节（最后一个字节是padding长度），没有padding时为nil
type RawRtcp struct {
	Count   uint8
	Payload []byte
	Padding []byte
}

type Sr struct {
	RawRtcp
}

type Sdes struct {
	RawRtcp
}

type Bye struct {
	RawRtcp
}

type Rtpfb struct {
	RawRtcp
}

type Psfb struct {
	RawRtcp
}

type OpaqueRtcp struct {
	PacketType uint8
	RawRtcp
}

func (p *Sr) RtcpPacketType() uint8         { return RtcpPacketTypeSr }
func (p *Sdes) RtcpPacketType() uint8       { return RtcpPacketTypeSdes }
func (p *Bye) RtcpPacketType() uint8        { return RtcpPacketTypeBye }
func (p *Rtpfb) RtcpPacketType() uint8      { return RtcpPacketTypeRtpfb }
func (p *Psfb) RtcpPacketType() uint8       { return RtcpPacketTypePsfb }
func (p *OpaqueRtcp) RtcpPacketType() uint8 { return p.PacketType }

func (p *Sr) Pack() ([]byte, error)         { return p.pack(RtcpPacketTypeSr) }
func (p *Sdes) Pack() ([]byte, error)       { return p.pack(RtcpPacketTypeSdes) }
func (p *Bye) Pack() ([]byte, error)        { return p.pack(RtcpPacketTypeBye) }
func (p *Rtpfb) Pack() ([]byte, error)      { return p.pack(RtcpPacketTypeRtpfb) }
func (p *Psfb) Pack() ([]byte, error)       { return p.pack(RtcpPacketTypePsfb) }
func (p *OpaqueRtcp) Pack() ([]byte, error) { return p.pack(p.PacketType) }

func (r *RawRtcp) pack(packetType uint8) ([]byte, error) {
	return packRtcp(packetType, r.Count, r.Payload, r.Padding)
}

func (r RawRtcp) String() string {
	return fmt.Sprintf("count=%d, len=%d, padding=%d, hex=%s",
		r.Count, len(r.Payload), len(r.Padding), hex.EncodeToString(nazabytes.Prefix(r.Payload, 32)))
}

// newRawRtcpPacket 根据packet type生成对应类型，payload为去掉padding后的数据
func newRawRtcpPacket(packetType uint8, count uint8, payload []byte, padding []byte) IRtcpPacket {
	raw := RawRtcp{
		Count:   count,
		Payload: payload,
		Padding: padding,
	}
	switch packetType {
	case RtcpPacketTypeSr:
		return &Sr{raw}
	case RtcpPacketTypeSdes:
		return &Sdes{raw}
	case RtcpPacketTypeBye:
		return &Bye{raw}
	case RtcpPacketTypeRtpfb:
		return &Rtpfb{raw}
	case RtcpPacketTypePsfb:
		return &Psfb{raw}
	}
	return &OpaqueRtcp{
		PacketType: packetType,
		RawRtcp:    raw,
	}
}

// packRtcp 包头 + payload + padding
//
// 返回的error中，Offset是相对于本包起始位置的偏移，Index为-1
func packRtcp(packetType uint8, count uint8, payload []byte, padding []byte) ([]byte, error) {
	if count > RtcpMaxCount {
		return nil, base.NewRtcpError(fmt.Errorf("%w. count=%d", base.ErrRtcpTooManyReports, count), 0, -1)
	}
	if padding == nil {
		if len(payload)%4 != 0 {
			return nil, base.NewRtcpError(fmt.Errorf("%w. payload=%d", base.ErrRtcpInvalidLength, len(payload)), RtcpHeaderLength, -1)
		}
	} else {
		pl := len(padding)
		if pl == 0 || int(padding[pl-1]) != pl || (len(payload)+pl)%4 != 0 {
			return nil, base.NewRtcpError(fmt.Errorf("%w. padding=%d", base.ErrRtcpInvalidPadding, pl), RtcpHeaderLength+len(payload), -1)
		}
	}

	total := len(payload) + len(padding)
	if total > RtcpMaxPayloadLength {
		return nil, base.NewRtcpError(fmt.Errorf("%w. payload=%d", base.ErrRtcpInvalidLength, total), 0, -1)
	}

	h := RtcpHeader{
		Version:       RtcpVersion,
		CountOrFormat: count,
		PacketType:    packetType,
		Length:        uint16(total / 4),
	}
	if padding != nil {
		h.Padding = 1
	}

	out := make([]byte, RtcpHeaderLength+total)
	h.PackTo(out)
	copy(out[RtcpHeaderLength:], payload)
	copy(out[RtcpHeaderLength+len(payload):], padding)
	return out, nil
}
