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
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/q191201771/naza/pkg/bele"
	"github.com/q191201771/naza/pkg/nazabytes"
)

// DumpFile 将收到的udp包按如下格式依次写入文件，用于离线回放：
//
// | Ver(4) | Typ(4) | Len(4) | Timestamp(4) | Body(Len) |
//
// 所有整数都是大端。Timestamp单位秒。
type DumpFile struct {
	file *os.File
}

const (
	DumpFileVersion = 1

	DumpTypeDefault  = 1
	DumpTypeRtcpData = 2

	dumpFileHeaderLength = 16

	// 一个udp包最大不超过64KB
	dumpFileMaxBodyLength = 65536
)

type DumpFileMessage struct {
	Ver       uint32
	Typ       uint32
	Len       uint32
	Timestamp uint32
	Body      []byte
}

func NewDumpFile() *DumpFile {
	return &DumpFile{}
}

func (d *DumpFile) OpenToWrite(filename string) (err error) {
	dir := filepath.Dir(filename)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	d.file, err = os.Create(filename)
	return
}

func (d *DumpFile) OpenToRead(filename string) (err error) {
	d.file, err = os.Open(filename)
	return
}

func (d *DumpFile) Write(b []byte) error {
	return d.WriteWithType(b, DumpTypeDefault)
}

func (d *DumpFile) WriteWithType(b []byte, typ uint32) error {
	_, err := d.file.Write(d.pack(b, typ, uint32(time.Now().Unix())))
	return err
}

// ReadOneMessage 读取一条消息，文件读完时返回io.EOF
func (d *DumpFile) ReadOneMessage() (m DumpFileMessage, err error) {
	h := make([]byte, dumpFileHeaderLength)
	n, err := io.ReadFull(d.file, h)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = NewErrDumpFile(dumpFileHeaderLength, n)
		}
		return
	}
	m.Ver = bele.BeUint32(h)
	m.Typ = bele.BeUint32(h[4:])
	m.Len = bele.BeUint32(h[8:])
	m.Timestamp = bele.BeUint32(h[12:])
	if m.Ver != DumpFileVersion {
		err = fmt.Errorf("%w. ver=%d", ErrDumpFile, m.Ver)
		return
	}
	if m.Len > dumpFileMaxBodyLength {
		err = fmt.Errorf("%w. len=%d", ErrDumpFile, m.Len)
		return
	}

	m.Body = make([]byte, m.Len)
	n, err = io.ReadFull(d.file, m.Body)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = NewErrDumpFile(int(m.Len), n)
	}
	return
}

func (d *DumpFile) Close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}

// ---------------------------------------------------------------------------------------------------------------------

func (m *DumpFileMessage) DebugString() string {
	return fmt.Sprintf("ver: %d, typ: %d, len: %d, timestamp: %d, hex: %s",
		m.Ver, m.Typ, m.Len, m.Timestamp, hex.Dump(nazabytes.Prefix(m.Body, 16)))
}

// ---------------------------------------------------------------------------------------------------------------------

func (d *DumpFile) pack(b []byte, typ uint32, timestamp uint32) []byte {
	ret := make([]byte, len(b)+dumpFileHeaderLength)
	bele.BePutUint32(ret, DumpFileVersion)
	bele.BePutUint32(ret[4:], typ)
	bele.BePutUint32(ret[8:], uint32(len(b)))
	bele.BePutUint32(ret[12:], timestamp)
	copy(ret[16:], b)
	return ret
}
