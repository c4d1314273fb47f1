// Copyright 2022, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package main

import (
	"testing"

	"github.com/q191201771/lalrtcp/pkg/rtprtcp"
	"github.com/q191201771/naza/pkg/assert"
)

func TestPackCnameChunk(t *testing.T) {
	b := packCnameChunk(1, "lalrtcp")
	assert.Equal(t, []byte{0, 0, 0, 1, 1, 7, 'l', 'a', 'l', 'r', 't', 'c', 'p', 0, 0, 0}, b)

	// 刚好对齐时仍然需要null结尾
	b = packCnameChunk(1, "ab")
	assert.Equal(t, []byte{0, 0, 0, 1, 1, 2, 'a', 'b', 0, 0, 0, 0}, b)

	sdes := &rtprtcp.Sdes{RawRtcp: rtprtcp.RawRtcp{Count: 1, Payload: packCnameChunk(senderSsrc, cname)}}
	rr := &rtprtcp.Rr{SenderSsrc: senderSsrc, Reports: []rtprtcp.ReportBlock{{Ssrc: mediaSsrc, PacketsLost: -1}}}
	out, err := rtprtcp.PackRtcpCompound([]rtprtcp.IRtcpPacket{rr, sdes})
	assert.Equal(t, nil, err)
	pkts, err := rtprtcp.ParseRtcpCompound(out)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(pkts))
	assert.Equal(t, int32(-1), pkts[0].(*rtprtcp.Rr).Reports[0].PacketsLost)
	assert.Equal(t, sdes.Payload, pkts[1].(*rtprtcp.Sdes).Payload)
}
