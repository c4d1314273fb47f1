// Copyright 2022, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base_test

import (
	"testing"

	"github.com/q191201771/lalrtcp/pkg/base"
	"github.com/q191201771/naza/pkg/assert"
	"github.com/q191201771/naza/pkg/nazalog"
)

func newLogger(t *testing.T, level nazalog.Level) nazalog.Logger {
	l, err := nazalog.New(func(option *nazalog.Option) {
		option.Level = level
		option.IsToStdout = true
	})
	assert.Equal(t, nil, err)
	return l
}

func TestLogDump(t *testing.T) {
	b := []byte{0x81, 0xc9, 0x00, 0x07, 0x30, 0xb6, 0x84, 0x07}

	ld := base.NewLogDump(newLogger(t, nazalog.LevelDebug), 2, 4)
	assert.Equal(t, true, ld.ShouldDump())
	ld.DumpHex("first", b)
	assert.Equal(t, true, ld.ShouldDump())
	ld.DumpHex("second", b)
	assert.Equal(t, false, ld.ShouldDump())

	ld = base.NewLogDump(newLogger(t, nazalog.LevelTrace), 0, 4)
	for i := 0; i < 8; i++ {
		assert.Equal(t, true, ld.ShouldDump())
	}

	ld = base.NewLogDump(newLogger(t, nazalog.LevelInfo), 2, 4)
	assert.Equal(t, false, ld.ShouldDump())
}
