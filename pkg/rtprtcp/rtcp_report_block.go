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

// -----------------------------------------
// rfc3550 6.4.1 report block, fixed 24 bytes
// -----------------------------------------
//
//         0                   1                   2                   3
//         0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//        +=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+
//        |                 SSRC_1 (SSRC of first source)                 |
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//        | fraction lost |       cumulative number of packets lost       |
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//        |           extended highest sequence number received           |
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//        |                      interarrival jitter                      |
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//        |                         last SR (LSR)                         |
//        +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//        |                   delay since last SR (DLSR)                  |
//        +=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+
//
// cumulative number of packets lost是有符号的24位整数（二进制补码），
// 收到重复包时期望值可能小于实际收到的数量，此时为负数

const (
	ReportBlockLength = 24

	PacketsLostMin = -(1 << 23)
	PacketsLostMax = 1<<23 - 1
)

type ReportBlock struct {
	Ssrc         uint32
	FractionLost uint8
	PacketsLost  int32 // 24b, signed
	HighestSeq   uint32
	Jitter       uint32
	Lsr          uint32 // middle 32 bits of NTP timestamp of the last SR, 0 if none
	Dlsr         uint32 // in 1/65536 seconds, 0 if none
}

// ParseReportBlock
//
// @param b: 至少24字节，只读取前24字节
func ParseReportBlock(b []byte) (ReportBlock, error) {
	var rb ReportBlock
	if len(b) < ReportBlockLength {
		return rb, base.NewRtcpError(base.ErrRtcpTruncated, 0, -1)
	}
	rb.Ssrc = bele.BeUint32(b)
	rb.FractionLost = b[4]
	rb.PacketsLost = ParsePacketsLost(b[5:])
	rb.HighestSeq = bele.BeUint32(b[8:])
	rb.Jitter = bele.BeUint32(b[12:])
	rb.Lsr = bele.BeUint32(b[16:])
	rb.Dlsr = bele.BeUint32(b[20:])
	return rb, nil
}

// PackTo @param out 传出参数，长度需>=24
func (rb *ReportBlock) PackTo(out []byte) error {
	if len(out) < ReportBlockLength {
		return fmt.Errorf("%w. need=%d, actual=%d", base.ErrShortBuffer, ReportBlockLength, len(out))
	}
	if err := PackPacketsLost(out[5:], rb.PacketsLost); err != nil {
		return err
	}
	bele.BePutUint32(out, rb.Ssrc)
	out[4] = rb.FractionLost
	bele.BePutUint32(out[8:], rb.HighestSeq)
	bele.BePutUint32(out[12:], rb.Jitter)
	bele.BePutUint32(out[16:], rb.Lsr)
	bele.BePutUint32(out[20:], rb.Dlsr)
	return nil
}

func (rb *ReportBlock) Pack() ([]byte, error) {
	out := make([]byte, ReportBlockLength)
	if err := rb.PackTo(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (rb ReportBlock) String() string {
	return fmt.Sprintf("RB(ssrc=%d fl=%d lost=%d hs=%d jit=%d lsr=%d dlsr=%d)",
		rb.Ssrc, rb.FractionLost, rb.PacketsLost, rb.HighestSeq, rb.Jitter, rb.Lsr, rb.Dlsr)
}

// ParsePacketsLost 将3字节的有符号数扩展为int32
//
// 最高位为1时前面补0xFF，否则补0x00，再按大端int32读取
//
// @param b: 至少3字节
func ParsePacketsLost(b []byte) int32 {
	var ext byte
	if b[0]&0x80 != 0 {
		ext = 0xFF
	}
	return int32(bele.BeUint32([]byte{ext, b[0], b[1], b[2]}))
}

// PackPacketsLost 将v按大端int32格式化后丢弃最高字节，写入out的前3字节
//
// v不在[PacketsLostMin, PacketsLostMax]范围内时返回ErrRtcpOutOfRange，不做截断
//
// @param out: 至少3字节
func PackPacketsLost(out []byte, v int32) error {
	if v < PacketsLostMin || v > PacketsLostMax {
		return fmt.Errorf("%w. v=%d", base.ErrRtcpOutOfRange, v)
	}
	bele.BePutUint24(out, uint32(v)&0xFFFFFF)
	return nil
}
