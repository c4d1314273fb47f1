// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base_test

import (
	"encoding/json"
	"testing"

	"github.com/q191201771/lalrtcp/pkg/base"
	"github.com/q191201771/naza/pkg/assert"
)

func TestStatRtcp(t *testing.T) {
	s := base.NewStatRtcp("RTCPUDP1")
	s.OnDatagram("127.0.0.1:5004", 32, []string{"RR"}, nil)
	s.OnDatagram("127.0.0.1:5006", 60, []string{"SR", "RR", "SDES"}, nil)
	s.OnDatagram("", 3, nil, base.ErrRtcpTruncated)

	assert.Equal(t, "127.0.0.1:5006", s.RemoteAddr)
	assert.Equal(t, uint64(95), s.ReadBytesSum)
	assert.Equal(t, uint64(3), s.DatagramNum)
	assert.Equal(t, uint64(1), s.ErrorNum)
	assert.Equal(t, map[string]uint64{"RR": 2, "SR": 1, "SDES": 1}, s.PacketNum)

	b, err := json.Marshal(s)
	assert.Equal(t, nil, err)
	var s2 base.StatRtcp
	err = json.Unmarshal(b, &s2)
	assert.Equal(t, nil, err)
	assert.Equal(t, s, s2)
}
