// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package rtprtcp_test

import (
	"testing"

	"github.com/pion/rtcp"
	"github.com/q191201771/lalrtcp/pkg/rtprtcp"
	"github.com/q191201771/naza/pkg/assert"
)

// 和pion/rtcp互相解析，确认二进制格式与第三方实现一致

func TestInterop_PackThenPionUnmarshal(t *testing.T) {
	rr := &rtprtcp.Rr{
		SenderSsrc: 817267719,
		Reports: []rtprtcp.ReportBlock{
			{Ssrc: 1200895919, FractionLost: 12, PacketsLost: 345, HighestSeq: 630, Jitter: 1906, Lsr: 0x11223344, Dlsr: 65536},
			{Ssrc: 7, PacketsLost: -1},
		},
	}
	b, err := rr.Pack()
	assert.Equal(t, nil, err)

	pkts, err := rtcp.Unmarshal(b)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(pkts))
	prr, ok := pkts[0].(*rtcp.ReceiverReport)
	assert.Equal(t, true, ok)
	assert.Equal(t, uint32(817267719), prr.SSRC)
	assert.Equal(t, 2, len(prr.Reports))
	assert.Equal(t, rtcp.ReceptionReport{
		SSRC:               1200895919,
		FractionLost:       12,
		TotalLost:          345,
		LastSequenceNumber: 630,
		Jitter:             1906,
		LastSenderReport:   0x11223344,
		Delay:              65536,
	}, prr.Reports[0])

	// pion按无符号数解析
	assert.Equal(t, uint32(0xFFFFFF), prr.Reports[1].TotalLost)
}

func TestInterop_PionMarshalThenParse(t *testing.T) {
	in := []rtcp.Packet{
		&rtcp.SenderReport{
			SSRC:        1,
			NTPTime:     0xe1e2e3e4e5e6e7e8,
			RTPTime:     90000,
			PacketCount: 10,
			OctetCount:  1000,
			Reports:     []rtcp.ReceptionReport{{SSRC: 2, TotalLost: 3}},
		},
		&rtcp.ReceiverReport{
			SSRC: 3,
			Reports: []rtcp.ReceptionReport{
				{SSRC: 4, FractionLost: 1, TotalLost: 2, LastSequenceNumber: 3, Jitter: 4, LastSenderReport: 5, Delay: 6},
				{SSRC: 5, TotalLost: 0x7FFFFF},
			},
		},
		&rtcp.Goodbye{Sources: []uint32{1}, Reason: "bye"},
		&rtcp.PictureLossIndication{SenderSSRC: 3, MediaSSRC: 1},
	}
	b, err := rtcp.Marshal(in)
	assert.Equal(t, nil, err)

	pkts, err := rtprtcp.ParseRtcpCompound(b)
	assert.Equal(t, nil, err)
	assert.Equal(t, 4, len(pkts))

	sr, ok := pkts[0].(*rtprtcp.Sr)
	assert.Equal(t, true, ok)
	assert.Equal(t, uint8(1), sr.Count)
	assert.Equal(t, 4+20+24, len(sr.Payload))

	rr, ok := pkts[1].(*rtprtcp.Rr)
	assert.Equal(t, true, ok)
	assert.Equal(t, rtprtcp.Rr{
		SenderSsrc: 3,
		Reports: []rtprtcp.ReportBlock{
			{Ssrc: 4, FractionLost: 1, PacketsLost: 2, HighestSeq: 3, Jitter: 4, Lsr: 5, Dlsr: 6},
			{Ssrc: 5, PacketsLost: rtprtcp.PacketsLostMax},
		},
	}, *rr)

	bye, ok := pkts[2].(*rtprtcp.Bye)
	assert.Equal(t, true, ok)
	assert.Equal(t, uint8(1), bye.Count)

	psfb, ok := pkts[3].(*rtprtcp.Psfb)
	assert.Equal(t, true, ok)
	// FMT=1 PLI
	assert.Equal(t, uint8(1), psfb.Count)
	assert.Equal(t, 8, len(psfb.Payload))

	out, err := rtprtcp.PackRtcpCompound(pkts)
	assert.Equal(t, nil, err)
	assert.Equal(t, b, out)
}
