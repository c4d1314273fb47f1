// Copyright 2022, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/q191201771/lalrtcp/pkg/base"
	"github.com/q191201771/naza/pkg/nazaerrors"
	"github.com/q191201771/naza/pkg/nazajson"
	"github.com/q191201771/naza/pkg/nazalog"
)

type Config struct {
	ListenAddr        string `json:"listen_addr"`
	RecordFilename    string `json:"record_filename"`
	MaxReadPacketSize int    `json:"max_read_packet_size"`
	DebugDumpMaxNum   int    `json:"debug_dump_max_num"`
	HexDumpMaxLen     int    `json:"hex_dump_max_len"`

	LogConfig nazalog.Option `json:"log"`
}

// LoadConf
//
// @param confFile: 为空时全部使用默认配置
func LoadConf(confFile string) (*Config, error) {
	if confFile == "" {
		return ParseConf([]byte("{}"))
	}
	rawContent, err := ioutil.ReadFile(confFile)
	if err != nil {
		return nil, nazaerrors.Wrap(err)
	}
	return ParseConf(rawContent)
}

func ParseConf(rawContent []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(rawContent, &config); err != nil {
		return nil, nazaerrors.Wrap(err)
	}

	j, err := nazajson.New(rawContent)
	if err != nil {
		return nil, nazaerrors.Wrap(err)
	}

	// 配置不存在时，设置默认值
	if !j.Exist("max_read_packet_size") {
		config.MaxReadPacketSize = base.RtcpDumpMaxReadPacketSize
	}
	if !j.Exist("debug_dump_max_num") {
		config.DebugDumpMaxNum = base.RtcpDumpDebugMaxNum
	}
	if !j.Exist("hex_dump_max_len") {
		config.HexDumpMaxLen = 128
	}
	if !j.Exist("log.level") {
		config.LogConfig.Level = nazalog.LevelDebug
	}
	if !j.Exist("log.filename") {
		config.LogConfig.Filename = "./logs/rtcpdump.log"
	}
	if !j.Exist("log.is_to_stdout") {
		config.LogConfig.IsToStdout = true
	}
	if !j.Exist("log.is_rotate_daily") {
		config.LogConfig.IsRotateDaily = true
	}
	if !j.Exist("log.short_file_flag") {
		config.LogConfig.ShortFileFlag = true
	}
	if !j.Exist("log.assert_behavior") {
		config.LogConfig.AssertBehavior = nazalog.AssertError
	}

	// 检查配置项
	if config.MaxReadPacketSize < 4 {
		return nil, fmt.Errorf("%w. max_read_packet_size=%d", base.ErrConfig, config.MaxReadPacketSize)
	}

	return &config, nil
}
