// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import "strings"

// 版本信息相关
// 一部分版本信息使用了naza.bininfo，另外一些信息由本文件提供

// 版本，该变量由外部脚本修改维护
const LalRtcpVersion = "v0.1.0"

var (
	LalRtcpLibraryName = "lalrtcp"
	LalRtcpGithubRepo  = "github.com/q191201771/lalrtcp"
	LalRtcpGithubSite  = "https://github.com/q191201771/lalrtcp"

	// e.g. lalrtcp v0.1.0 (github.com/q191201771/lalrtcp)
	LalRtcpFullInfo = LalRtcpLibraryName + " " + LalRtcpVersion + " (" + LalRtcpGithubRepo + ")"

	// e.g. 0.1.0
	LalRtcpVersionDot string
)

func init() {
	LalRtcpVersionDot = strings.TrimPrefix(LalRtcpVersion, "v")
}
