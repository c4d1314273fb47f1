// Copyright 2022, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/q191201771/lalrtcp/pkg/base"
	"github.com/q191201771/lalrtcp/pkg/rtprtcp"
	"github.com/q191201771/naza/pkg/bele"
	"github.com/q191201771/naza/pkg/nazalog"
	"github.com/q191201771/naza/pkg/nazanet"
)

// 模拟一路90kHz的视频rtp流（每20毫秒一个包，带随机丢包和重复包），
// 用RrProducer统计后，每隔一段时间向目标地址发送一个 RR + SDES 的复合包。
//
// 可以配合rtcpdump使用：
//   ./bin/rtcpdump -l :5005
//   ./bin/sendrr -o 127.0.0.1:5005

const (
	senderSsrc = 0x11223344
	mediaSsrc  = 0x55667788
	clockRate  = 90000
	rtpPeriod  = 20 * time.Millisecond
	cname      = "lalrtcp"
)

func main() {
	_ = nazalog.Init(func(option *nazalog.Option) {
		option.AssertBehavior = nazalog.AssertFatal
	})
	defer nazalog.Sync()

	addr, interval, num, lossPercent, dupPercent := parseFlag()
	uk := base.GenUkRtcpSender()

	conn, err := nazanet.NewUdpConnection(func(option *nazanet.UdpConnectionOption) {
		option.RAddr = addr
	})
	nazalog.Assert(nil, err)
	defer conn.Dispose()

	producer := rtprtcp.NewRrProducer(senderSsrc, mediaSsrc, clockRate)
	sdes := &rtprtcp.Sdes{RawRtcp: rtprtcp.RawRtcp{Count: 1, Payload: packCnameChunk(senderSsrc, cname)}}

	seq := uint16(rand.Intn(65536))
	ts := rand.Uint32()
	start := time.Now()
	next := start.Add(interval)

	for i := 0; num == 0 || i < num; {
		// 发送端的rtp时间戳和墙上时间同步增长，加上一点随机抖动
		arrival := time.Now().Add(time.Duration(rand.Intn(5)) * time.Millisecond)

		r := rand.Intn(100)
		if r >= lossPercent {
			producer.FeedRtpPacket(seq, ts, arrival)
			if r < lossPercent+dupPercent {
				producer.FeedRtpPacket(seq, ts, arrival)
			}
		}
		seq++
		ts += uint32(clockRate * rtpPeriod / time.Second)

		now := time.Now()
		if now.After(next) {
			// 模拟收到对端的sr
			ntp := rtprtcp.UnixNano2Ntp(uint64(now.Add(-rtpPeriod).UnixNano()))
			producer.OnSenderReport(uint32(ntp>>32), uint32(ntp), now.Add(-rtpPeriod))

			rr, ok := producer.Produce(now)
			if ok {
				b, err := rtprtcp.PackRtcpCompound([]rtprtcp.IRtcpPacket{&rr, sdes})
				nazalog.Assert(nil, err)
				if err = conn.Write(b); err != nil {
					nazalog.Errorf("[%s] write failed. err=%+v", uk, err)
				}
				nazalog.Infof("[%s] send rtcp. len=%d, rr=%s", uk, len(b), rr.String())
				i++
			}
			next = next.Add(interval)
		}

		time.Sleep(rtpPeriod)
	}
}

// packCnameChunk rfc3550 6.5 只有一个CNAME item的SDES chunk，以null结尾并补齐到4字节
func packCnameChunk(ssrc uint32, name string) []byte {
	n := 4 + 2 + len(name)
	n += 4 - n%4
	b := make([]byte, n)
	bele.BePutUint32(b, ssrc)
	b[4] = 1 // CNAME
	b[5] = uint8(len(name))
	copy(b[6:], name)
	return b
}

func parseFlag() (addr string, interval time.Duration, num int, lossPercent int, dupPercent int) {
	o := flag.String("o", "", "specify udp addr to send rtcp, e.g. 127.0.0.1:5005")
	i := flag.Int("i", 1000, "specify interval of rr in ms")
	n := flag.Int("n", 0, "specify number of rr to send, 0 means forever")
	l := flag.Int("l", 5, "specify rtp loss percent")
	d := flag.Int("d", 1, "specify rtp duplicate percent")
	flag.Parse()
	if *o == "" || *i <= 0 || *l < 0 || *d < 0 || *l+*d > 100 {
		flag.Usage()
		_, _ = fmt.Fprintf(os.Stderr, `
Example:
  ./bin/sendrr -o 127.0.0.1:5005
  ./bin/sendrr -o 127.0.0.1:5005 -i 500 -n 10 -l 10 -d 2
`)
		os.Exit(1)
	}
	return *o, time.Duration(*i) * time.Millisecond, *n, *l, *d
}
