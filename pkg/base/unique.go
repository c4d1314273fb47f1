// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import "github.com/q191201771/naza/pkg/unique"

const (
	UkPreRtcpUdpListener = "RTCPUDP"
	UkPreRtcpFileReplay  = "RTCPFILE"
	UkPreRtcpSender      = "RTCPSEND"
	UkPreRtcpHexDecoder  = "RTCPHEX"
)

var (
	siUkRtcpUdpListener *unique.SingleGenerator
	siUkRtcpFileReplay  *unique.SingleGenerator
	siUkRtcpSender      *unique.SingleGenerator
	siUkRtcpHexDecoder  *unique.SingleGenerator
)

func GenUkRtcpUdpListener() string {
	return siUkRtcpUdpListener.GenUniqueKey()
}

func GenUkRtcpFileReplay() string {
	return siUkRtcpFileReplay.GenUniqueKey()
}

func GenUkRtcpSender() string {
	return siUkRtcpSender.GenUniqueKey()
}

func GenUkRtcpHexDecoder() string {
	return siUkRtcpHexDecoder.GenUniqueKey()
}

func init() {
	siUkRtcpUdpListener = unique.NewSingleGenerator(UkPreRtcpUdpListener)
	siUkRtcpFileReplay = unique.NewSingleGenerator(UkPreRtcpFileReplay)
	siUkRtcpSender = unique.NewSingleGenerator(UkPreRtcpSender)
	siUkRtcpHexDecoder = unique.NewSingleGenerator(UkPreRtcpHexDecoder)
}
