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
	"time"

	"github.com/q191201771/lalrtcp/pkg/rtprtcp"
	"github.com/q191201771/naza/pkg/assert"
)

func TestMswLsw2UnixNano(t *testing.T) {
	u := rtprtcp.MswLsw2UnixNano(3805600902, 2181843386)
	rtprtcp.Log.Debug(u)
	tt := time.Unix(int64(u/1e9), int64(u%1e9))
	rtprtcp.Log.Debug(tt.String())
	assert.Equal(t, int64(3805600902-2208988800), tt.Unix())

	// 0.5秒
	assert.Equal(t, uint64(1e9+5e8), rtprtcp.MswLsw2UnixNano(2208988801, 1<<31))
}

func TestUnixNano2Ntp(t *testing.T) {
	ntp := rtprtcp.UnixNano2Ntp(1e9 + 5e8)
	assert.Equal(t, rtprtcp.MswLsw2Ntp(2208988801, 1<<31), ntp)

	// 精度损失在1纳秒以内
	for _, v := range []uint64{0, 1, 123456789, 1659355200123456789} {
		back := rtprtcp.Ntp2UnixNano(rtprtcp.UnixNano2Ntp(v))
		assert.Equal(t, true, v-back <= 1)
	}
}

func TestMiddleNtp(t *testing.T) {
	assert.Equal(t, uint32(0x33445566), rtprtcp.MiddleNtp(0x11223344, 0x55667788))
	assert.Equal(t, uint32(0), rtprtcp.MiddleNtp(0, 0))
}

func TestDlsr(t *testing.T) {
	assert.Equal(t, uint32(0), rtprtcp.Dlsr(0))
	assert.Equal(t, uint32(0), rtprtcp.Dlsr(-time.Second))
	assert.Equal(t, uint32(65536), rtprtcp.Dlsr(time.Second))
	assert.Equal(t, uint32(32768), rtprtcp.Dlsr(500*time.Millisecond))
}
