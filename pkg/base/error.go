// Copyright 2021, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import (
	"errors"
	"fmt"
)

// ----- 通用的 ---------------------------------------------------------------------------------------------------------

var (
	ErrShortBuffer = errors.New("lalrtcp: buffer too short")
	ErrConfig      = errors.New("lalrtcp: invalid config")
	ErrClosed      = errors.New("lalrtcp: closed")
)

// ----- pkg/base ------------------------------------------------------------------------------------------------------

var ErrDumpFile = errors.New("lalrtcp.base: invalid dump file")

func NewErrDumpFile(need, actual int) error {
	return fmt.Errorf("%w. need=%d, actual=%d", ErrDumpFile, need, actual)
}

// ----- pkg/rtprtcp ---------------------------------------------------------------------------------------------------

var (
	ErrRtcpTruncated       = errors.New("lalrtcp.rtprtcp: truncated")
	ErrRtcpInvalidVersion  = errors.New("lalrtcp.rtprtcp: invalid version")
	ErrRtcpInvalidPadding  = errors.New("lalrtcp.rtprtcp: invalid padding")
	ErrRtcpInvalidRrLength = errors.New("lalrtcp.rtprtcp: invalid receiver report length")
	ErrRtcpOutOfRange      = errors.New("lalrtcp.rtprtcp: packets lost out of range")
	ErrRtcpTooManyReports  = errors.New("lalrtcp.rtprtcp: too many report blocks")
	ErrRtcpInvalidLength   = errors.New("lalrtcp.rtprtcp: invalid length")
)

// RtcpError 携带出错位置的rtcp错误
//
// Err    是上面的某个ErrRtcp*，可使用errors.Is判断
// Offset 出错位置在整个输入buffer中的字节偏移
// Index  出错的rtcp包在复合包中的序号，从0开始，编码单个包时为-1
type RtcpError struct {
	Err    error
	Offset int
	Index  int
}

func NewRtcpError(err error, offset int, index int) *RtcpError {
	return &RtcpError{
		Err:    err,
		Offset: offset,
		Index:  index,
	}
}

func (e *RtcpError) Error() string {
	return fmt.Sprintf("%s. offset=%d, index=%d", e.Err.Error(), e.Offset, e.Index)
}

func (e *RtcpError) Unwrap() error {
	return e.Err
}

// ---------------------------------------------------------------------------------------------------------------------
