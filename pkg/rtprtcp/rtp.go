// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package rtprtcp

// CompareSeq 比较rtp序号的值，内部处理序号翻转问题，见单元测试中的例子
//
// @return
//   - 0 a和b相等
//   - 1 a大于b
//   - -1 a小于b
//
// 差值正好是32768时，a被认为较小
func CompareSeq(a, b uint16) int {
	if a == b {
		return 0
	}
	if a > b {
		if a-b < 32768 {
			return 1
		}

		return -1
	}

	// must be a < b
	if b-a < 32768 {
		return -1
	}

	return 1
}
