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
	"strings"

	"github.com/q191201771/lalrtcp/pkg/base"
	"github.com/q191201771/naza/pkg/bele"
)

// ---------------------------------------------
// rfc3550 6.4.2 RR: Receiver Report RTCP Packet
// ---------------------------------------------
//
//        0                   1                   2                   3
//        0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// header |V=2|P|    RC   |   PT=RR=201   |             length            |
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//        |                     SSRC of packet sender                     |
//        +=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+
// report |                 SSRC_1 (SSRC of first source)                 |
// block  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//   1    | fraction lost |       cumulative number of packets lost       |
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//        |           extended highest sequence number received           |
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//        |                      interarrival jitter                      |
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//        |                         last SR (LSR)                         |
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//        |                   delay since last SR (DLSR)                  |
//        +=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+
// report |                 SSRC_2 (SSRC of second source)                |
// block  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//   2    :                               ...                             :
//        +=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+

const rrSenderSsrcLength = 4

type Rr struct {
	SenderSsrc uint32

	// Reports 没有report block时，解析得到的是nil。
	// 打包时nil和空切片等价，比较两个Rr时应使用len判断是否为空
	Reports []ReportBlock

	// Padding 解析时保留的原始padding，打包时原样写回，一般为nil
	Padding []byte
}

// ParseRr
//
// @param payload: 去掉包头和padding后的数据，长度必须正好是4+24*count
// @param count:   包头中的RC字段
//
// @return count为0时，Reports为nil
func ParseRr(payload []byte, count uint8) (Rr, error) {
	return parseRr(payload, count, 0, -1)
}

// parseRr offset是payload在整个buffer中的偏移，只用于填充错误信息
func parseRr(payload []byte, count uint8, offset int, index int) (Rr, error) {
	var rr Rr
	need := rrSenderSsrcLength + ReportBlockLength*int(count)
	if len(payload) != need {
		return rr, base.NewRtcpError(fmt.Errorf("%w. need=%d, actual=%d", base.ErrRtcpInvalidRrLength, need, len(payload)), offset, index)
	}

	rr.SenderSsrc = bele.BeUint32(payload)
	if count > 0 {
		rr.Reports = make([]ReportBlock, count)
	}
	pos := rrSenderSsrcLength
	for i := 0; i < int(count); i++ {
		// 长度已经检查过，这里不会失败
		rr.Reports[i], _ = ParseReportBlock(payload[pos : pos+ReportBlockLength])
		pos += ReportBlockLength
	}
	return rr, nil
}

func (r *Rr) RtcpPacketType() uint8 {
	return RtcpPacketTypeRr
}

// PackPayload 只打包SSRC和report block，不包含包头，不添加padding
func (r *Rr) PackPayload() ([]byte, error) {
	if len(r.Reports) > RtcpMaxCount {
		return nil, base.NewRtcpError(fmt.Errorf("%w. count=%d", base.ErrRtcpTooManyReports, len(r.Reports)), 0, -1)
	}

	out := make([]byte, rrSenderSsrcLength+ReportBlockLength*len(r.Reports))
	bele.BePutUint32(out, r.SenderSsrc)
	pos := rrSenderSsrcLength
	for i := range r.Reports {
		if err := r.Reports[i].PackTo(out[pos:]); err != nil {
			return nil, base.NewRtcpError(err, pos+5, -1)
		}
		pos += ReportBlockLength
	}
	return out, nil
}

// Pack 打包成完整的rtcp包
func (r *Rr) Pack() ([]byte, error) {
	payload, err := r.PackPayload()
	if err != nil {
		var re *base.RtcpError
		if errors.As(err, &re) {
			re.Offset += RtcpHeaderLength
		}
		return nil, err
	}
	return packRtcp(RtcpPacketTypeRr, uint8(len(r.Reports)), payload, r.Padding)
}

func (r Rr) String() string {
	rbs := make([]string, len(r.Reports))
	for i := range r.Reports {
		rbs[i] = r.Reports[i].String()
	}
	return fmt.Sprintf("[RTCP-RR ssrc=%d RBS=[%s]]", r.SenderSsrc, strings.Join(rbs, ", "))
}
