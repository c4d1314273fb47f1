// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

// StatRtcp 一路rtcp输入（udp监听、文件回放或者hex字符串）的统计信息
type StatRtcp struct {
	SessionId    string `json:"session_id"`
	StartTime    string `json:"start_time"`
	RemoteAddr   string `json:"remote_addr"` // 最近一个udp包的来源地址
	ReadBytesSum uint64 `json:"read_bytes_sum"`
	DatagramNum  uint64 `json:"datagram_num"`
	ErrorNum     uint64 `json:"error_num"`

	// key为包类型名，比如"RR"，"SR"
	PacketNum map[string]uint64 `json:"packet_num"`
}

func NewStatRtcp(sessionId string) StatRtcp {
	return StatRtcp{
		SessionId: sessionId,
		StartTime: ReadableNowTime(),
		PacketNum: make(map[string]uint64),
	}
}

// OnDatagram 收到一个完整的复合包
//
// @param typeNames: 解析成功时各个包的类型名
// @param err:       解析是否出错
func (s *StatRtcp) OnDatagram(remoteAddr string, n int, typeNames []string, err error) {
	if remoteAddr != "" {
		s.RemoteAddr = remoteAddr
	}
	s.ReadBytesSum += uint64(n)
	s.DatagramNum++
	if err != nil {
		s.ErrorNum++
		return
	}
	for _, name := range typeNames {
		s.PacketNum[name]++
	}
}
