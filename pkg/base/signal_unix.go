// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

//go:build linux || darwin || netbsd || freebsd || openbsd || dragonfly
// +build linux darwin netbsd freebsd openbsd dragonfly

package base

import (
	"os"
	"os/signal"
	"syscall"
)

// RunSignalHandler 阻塞监听信号
//
// 收到SIGUSR1时回调onStat并继续监听，
// 收到SIGINT，SIGTERM或SIGUSR2时回调onExit并返回
func RunSignalHandler(onStat func(), onExit func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGUSR1, syscall.SIGUSR2, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(c)
	for s := range c {
		Log.Infof("recv signal. s=%+v", s)
		if s == syscall.SIGUSR1 {
			onStat()
			continue
		}
		onExit()
		return
	}
}
