// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import (
	"os"
	"os/signal"
)

// RunSignalHandler windows下没有SIGUSR1，只处理Ctrl+C
func RunSignalHandler(onStat func(), onExit func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)
	s := <-c
	Log.Infof("recv signal. s=%+v", s)
	onExit()
}
