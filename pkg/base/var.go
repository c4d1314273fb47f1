// Copyright 2021, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import "github.com/q191201771/naza/pkg/nazalog"

var Log = nazalog.GetGlobalLogger()

// ----- rtcpdump --------------------
var (
	// RtcpDumpMaxReadPacketSize udp读取rtcp包时的buffer大小
	RtcpDumpMaxReadPacketSize = 1500

	// RtcpDumpDebugMaxNum 日志级别为debug时，最多打印多少个包的hex
	RtcpDumpDebugMaxNum = 16
)
