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
	"os"

	"github.com/q191201771/lalrtcp/pkg/base"
	"github.com/q191201771/naza/pkg/bininfo"
	"github.com/q191201771/naza/pkg/nazalog"
)

// rtcpdump 解析并打印rtcp复合包
//
// 三种输入方式，优先级 -x > -f > -l：
//   -x 解析一个hex字符串
//   -f 回放DumpFile格式的录制文件
//   -l 监听udp端口，可选使用-w将收到的包录制到文件

type flags struct {
	confFile       string
	listenAddr     string
	recordFilename string
	replayFilename string
	hexStr         string
}

func main() {
	defer nazalog.Sync()

	f := parseFlag()

	config, err := LoadConf(f.confFile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "load conf failed. file=%s, err=%+v\n", f.confFile, err)
		os.Exit(1)
	}
	if f.listenAddr != "" {
		config.ListenAddr = f.listenAddr
	}
	if f.recordFilename != "" {
		config.RecordFilename = f.recordFilename
	}
	if f.hexStr == "" && f.replayFilename == "" && config.ListenAddr == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err = nazalog.Init(func(option *nazalog.Option) {
		*option = config.LogConfig
	}); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "initial log failed. err=%+v\n", err)
		os.Exit(1)
	}
	base.LogoutStartInfo()

	switch {
	case f.hexStr != "":
		d := NewDumper(base.GenUkRtcpHexDecoder(), config)
		_, err = d.FeedHex(f.hexStr)
	case f.replayFilename != "":
		d := NewDumper(base.GenUkRtcpFileReplay(), config)
		err = d.Replay(f.replayFilename)
		d.LogStat()
	default:
		d := NewDumper(base.GenUkRtcpUdpListener(), config)
		if err = d.Listen(config.ListenAddr); err != nil {
			break
		}
		go base.RunSignalHandler(d.LogStat, func() {
			_ = d.Dispose()
		})
		err = d.RunLoop(config.RecordFilename)
		d.LogStat()
	}
	if err != nil {
		base.Log.Errorf("rtcpdump exit. err=%+v", err)
	}
}

func parseFlag() flags {
	var f flags
	binInfoFlag := flag.Bool("v", false, "show bin info")
	flag.StringVar(&f.confFile, "c", "", "specify conf file, optional")
	flag.StringVar(&f.listenAddr, "l", "", "specify udp listen addr, e.g. :5005")
	flag.StringVar(&f.recordFilename, "w", "", "specify record file, used with -l")
	flag.StringVar(&f.replayFilename, "f", "", "specify record file to replay")
	flag.StringVar(&f.hexStr, "x", "", "specify hex string of rtcp compound packet")
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, `
Example:
  ./bin/rtcpdump -x "81c90007 30b68407 479437af 00000000 00000276 00000772 00000000 00000000"
  ./bin/rtcpdump -l :5005 -w ./rtcp.laldump
  ./bin/rtcpdump -f ./rtcp.laldump
  ./bin/rtcpdump -c ./conf/rtcpdump.conf.json
`)
	}
	flag.Parse()
	if *binInfoFlag {
		_, _ = fmt.Fprint(os.Stderr, bininfo.StringifyMultiLine())
		_, _ = fmt.Fprintln(os.Stderr, base.LalRtcpFullInfo)
		os.Exit(0)
	}
	return f
}
