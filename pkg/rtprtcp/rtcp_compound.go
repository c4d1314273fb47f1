// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package rtprtcp

import (
	"errors"
	"fmt"

	"github.com/q191201771/lalrtcp/pkg/base"
)

// 一个udp包中可以包含多个连续的rtcp包，称为复合包（compound packet），见rfc3550 6.1

// ParseRtcpCompound 依次解析b中的所有rtcp包
//
// 目前只有RR解析了包体，其他类型保留去掉padding后的原始payload，所以
// PackRtcpCompound(ParseRtcpCompound(b)) 与 b 完全一致
//
// 出错时返回*base.RtcpError，并且不返回已经解析出的包。
// 函数不修改b，返回的包中的payload引用b的内存
//
// @param b: 可以为空，此时返回空
func ParseRtcpCompound(b []byte) ([]IRtcpPacket, error) {
	var pkts []IRtcpPacket
	pos := 0
	for index := 0; pos < len(b); index++ {
		if len(b)-pos < RtcpHeaderLength {
			return nil, base.NewRtcpError(fmt.Errorf("%w. need=%d, actual=%d", base.ErrRtcpTruncated, RtcpHeaderLength, len(b)-pos), pos, index)
		}
		h, _ := ParseRtcpHeader(b[pos:])
		if h.Version != RtcpVersion {
			return nil, base.NewRtcpError(fmt.Errorf("%w. version=%d", base.ErrRtcpInvalidVersion, h.Version), pos, index)
		}
		pos += RtcpHeaderLength

		end := pos + h.PayloadLength()
		if end > len(b) {
			return nil, base.NewRtcpError(fmt.Errorf("%w. need=%d, actual=%d", base.ErrRtcpTruncated, h.PayloadLength(), len(b)-pos), pos, index)
		}
		payload := b[pos:end]
		payloadPos := pos
		pos = end

		var padding []byte
		if h.Padding == 1 {
			if len(payload) == 0 {
				return nil, base.NewRtcpError(fmt.Errorf("%w. empty payload", base.ErrRtcpInvalidPadding), payloadPos, index)
			}
			pl := int(payload[len(payload)-1])
			if pl == 0 || pl > len(payload) {
				return nil, base.NewRtcpError(fmt.Errorf("%w. padding=%d, payload=%d", base.ErrRtcpInvalidPadding, pl, len(payload)), end-1, index)
			}
			padding = payload[len(payload)-pl:]
			payload = payload[:len(payload)-pl]
		}

		switch h.PacketType {
		case RtcpPacketTypeRr:
			rr, err := parseRr(payload, h.CountOrFormat, payloadPos, index)
			if err != nil {
				return nil, err
			}
			rr.Padding = padding
			pkts = append(pkts, &rr)
		default:
			pkts = append(pkts, newRawRtcpPacket(h.PacketType, h.CountOrFormat, payload, padding))
		}
	}
	return pkts, nil
}

// PackRtcpCompound 依次打包pkts并拼接
//
// 出错时返回*base.RtcpError，Offset为在输出buffer中的偏移，Index为出错包的序号
func PackRtcpCompound(pkts []IRtcpPacket) ([]byte, error) {
	var out []byte
	for i, pkt := range pkts {
		b, err := pkt.Pack()
		if err != nil {
			var re *base.RtcpError
			if errors.As(err, &re) {
				return nil, base.NewRtcpError(re.Err, len(out)+re.Offset, i)
			}
			return nil, base.NewRtcpError(err, len(out), i)
		}
		out = append(out, b...)
	}
	return out, nil
}

// FilterRr 从复合包中挑出所有RR
func FilterRr(pkts []IRtcpPacket) []*Rr {
	var ret []*Rr
	for _, pkt := range pkts {
		if rr, ok := pkt.(*Rr); ok {
			ret = append(ret, rr)
		}
	}
	return ret
}
