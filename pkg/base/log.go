// Copyright 2022, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import (
	"encoding/hex"
	"fmt"

	"github.com/q191201771/naza/pkg/nazabytes"
	"github.com/q191201771/naza/pkg/nazalog"
)

// LogDump 控制原始二进制数据的hex打印次数
//
// trace级别时每次都打印，debug级别时最多打印debugMaxNum次，其他级别不打印
type LogDump struct {
	log         nazalog.Logger
	debugMaxNum int
	hexMaxLen   int

	debugCount int
}

// NewLogDump
//
// @param debugMaxNum: 日志最小级别为debug时，打印的次数阈值
// @param hexMaxLen:   每次最多打印多少字节
func NewLogDump(log nazalog.Logger, debugMaxNum int, hexMaxLen int) LogDump {
	return LogDump{
		log:         log,
		debugMaxNum: debugMaxNum,
		hexMaxLen:   hexMaxLen,
	}
}

func (ld *LogDump) ShouldDump() bool {
	switch ld.log.GetOption().Level {
	case nazalog.LevelTrace:
		return true
	case nazalog.LevelDebug:
		if ld.debugCount >= ld.debugMaxNum {
			return false
		}
		ld.debugCount++
		return true
	}
	return false
}

// DumpHex 调用之前需调用 ShouldDump
func (ld *LogDump) DumpHex(tag string, b []byte) {
	ld.log.Out(ld.log.GetOption().Level, 3, fmt.Sprintf("%s. len=%d, hex=\n%s", tag, len(b), hex.Dump(nazabytes.Prefix(b, ld.hexMaxLen))))
}
