// Copyright 2022, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/q191201771/lalrtcp/pkg/base"
	"github.com/q191201771/lalrtcp/pkg/rtprtcp"
	"github.com/q191201771/naza/pkg/nazaerrors"
	"github.com/q191201771/naza/pkg/nazanet"
)

// Dumper 解析rtcp复合包，打印日志并统计
//
// 输入可以是udp监听，DumpFile文件回放，或者hex字符串
type Dumper struct {
	uniqueKey string
	config    *Config
	logDump   base.LogDump

	mu   sync.Mutex
	stat base.StatRtcp

	conn      *nazanet.UdpConnection
	localAddr string
	closed    bool
}

func NewDumper(uniqueKey string, config *Config) *Dumper {
	return &Dumper{
		uniqueKey: uniqueKey,
		config:    config,
		logDump:   base.NewLogDump(base.Log, config.DebugDumpMaxNum, config.HexDumpMaxLen),
		stat:      base.NewStatRtcp(uniqueKey),
	}
}

// Feed 解析一个udp包
//
// @param remoteAddr: 来源地址，不是来自网络时填入""
func (d *Dumper) Feed(b []byte, remoteAddr string) ([]rtprtcp.IRtcpPacket, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.logDump.ShouldDump() {
		d.logDump.DumpHex(fmt.Sprintf("[%s] recv datagram. raddr=%s", d.uniqueKey, remoteAddr), b)
	}

	pkts, err := rtprtcp.ParseRtcpCompound(b)
	if err != nil {
		d.stat.OnDatagram(remoteAddr, len(b), nil, err)
		base.Log.Warnf("[%s] parse rtcp failed. raddr=%s, len=%d, err=%+v", d.uniqueKey, remoteAddr, len(b), err)
		return nil, err
	}

	names := make([]string, len(pkts))
	for i, pkt := range pkts {
		names[i] = rtprtcp.RtcpPacketTypeName(pkt.RtcpPacketType())
	}
	d.stat.OnDatagram(remoteAddr, len(b), names, nil)
	base.Log.Infof("[%s] recv rtcp. raddr=%s, len=%d, pkts=%s", d.uniqueKey, remoteAddr, len(b), stringifyPackets(pkts))
	return pkts, nil
}

// FeedHex 解析hex字符串，忽略其中的空白字符
func (d *Dumper) FeedHex(s string) ([]rtprtcp.IRtcpPacket, error) {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, nazaerrors.Wrap(err)
	}
	return d.Feed(b, "")
}

// Replay 依次解析DumpFile中的所有消息，单个消息解析失败不影响后续消息
func (d *Dumper) Replay(filename string) error {
	df := base.NewDumpFile()
	if err := df.OpenToRead(filename); err != nil {
		return nazaerrors.Wrap(err)
	}
	defer df.Close()

	for {
		m, err := df.ReadOneMessage()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return nazaerrors.Wrap(err)
		}
		if m.Typ != base.DumpTypeRtcpData && m.Typ != base.DumpTypeDefault {
			base.Log.Debugf("[%s] skip message. %s", d.uniqueKey, m.DebugString())
			continue
		}
		_, _ = d.Feed(m.Body, "")
	}
}

// Listen 绑定udp地址，不阻塞，之后调用RunLoop开始接收
//
// @param addr: 端口为0时由系统分配，可通过LocalAddr获取实际地址
func (d *Dumper) Listen(addr string) error {
	laddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nazaerrors.Wrap(err)
	}
	udpConn, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nazaerrors.Wrap(err)
	}
	conn, err := nazanet.NewUdpConnection(func(option *nazanet.UdpConnectionOption) {
		option.Conn = udpConn
		option.MaxReadPacketSize = d.config.MaxReadPacketSize
	})
	if err != nil {
		_ = udpConn.Close()
		return nazaerrors.Wrap(err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	// Dispose可能先于Listen被调用
	if d.closed {
		_ = conn.Dispose()
		return base.ErrClosed
	}
	d.conn = conn
	d.localAddr = udpConn.LocalAddr().String()
	base.Log.Infof("[%s] start udp listen. addr=%s", d.uniqueKey, d.localAddr)
	return nil
}

// LocalAddr Listen成功后的实际监听地址
func (d *Dumper) LocalAddr() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.localAddr
}

// RunLoop 阻塞直到出错或者调用Dispose
//
// @param recordFilename: 不为空时，将收到的udp包写入该文件
func (d *Dumper) RunLoop(recordFilename string) error {
	d.mu.Lock()
	conn := d.conn
	closed := d.closed
	d.mu.Unlock()
	if conn == nil || closed {
		return base.ErrClosed
	}

	var record *base.DumpFile
	if recordFilename != "" {
		record = base.NewDumpFile()
		if err := record.OpenToWrite(recordFilename); err != nil {
			return nazaerrors.Wrap(err)
		}
		defer record.Close()
		base.Log.Infof("[%s] record datagrams. filename=%s", d.uniqueKey, recordFilename)
	}

	return conn.RunLoop(func(b []byte, raddr *net.UDPAddr, err error) bool {
		if err != nil {
			return false
		}
		if record != nil {
			if werr := record.WriteWithType(b, base.DumpTypeRtcpData); werr != nil {
				base.Log.Errorf("[%s] write record failed. err=%+v", d.uniqueKey, werr)
			}
		}
		_, _ = d.Feed(b, raddr.String())
		return true
	})
}

// Dispose 可以在Listen之前调用，此时后续的Listen和RunLoop直接返回ErrClosed
func (d *Dumper) Dispose() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	if d.conn == nil {
		return nil
	}
	return d.conn.Dispose()
}

func (d *Dumper) GetStat() base.StatRtcp {
	d.mu.Lock()
	defer d.mu.Unlock()
	ret := d.stat
	ret.PacketNum = make(map[string]uint64, len(d.stat.PacketNum))
	for k, v := range d.stat.PacketNum {
		ret.PacketNum[k] = v
	}
	return ret
}

func (d *Dumper) LogStat() {
	b, _ := json.Marshal(d.GetStat())
	base.Log.Infof("[%s] stat. %s", d.uniqueKey, string(b))
}

func stringifyPackets(pkts []rtprtcp.IRtcpPacket) string {
	var sb strings.Builder
	for i, pkt := range pkts {
		if i != 0 {
			sb.WriteString(" ")
		}
		switch p := pkt.(type) {
		case *rtprtcp.Rr:
			sb.WriteString(p.String())
		case fmt.Stringer:
			sb.WriteString(fmt.Sprintf("[RTCP-%s %s]", rtprtcp.RtcpPacketTypeName(pkt.RtcpPacketType()), p.String()))
		}
	}
	return sb.String()
}
