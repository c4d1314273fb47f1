// Copyright 2020, Chef.  All rights reserved.
// https://github.com/q191201771/lalrtcp
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package rtprtcp

import "time"

// 通过收到的rtp包和rtcp sr包，产生rtcp rr包
//
// 统计方法见rfc3550 A.3 Determining Number of Packets Expected and Lost，
// 以及A.8 Estimating the Interarrival Jitter
//
// 注意，非并发安全

type RrProducer struct {
	senderSsrc uint32
	mediaSsrc  uint32

	clockRate int

	maxSeq      int32
	baseSeq     int32
	cycles      uint32
	received    uint32
	extendedSeq uint32

	baseArrival time.Time
	transit     uint32
	hasTransit  bool
	jitter      uint32 // 放大了16倍

	expectedPrior int64
	receivedPrior int64

	lsr       uint32
	srArrival time.Time
}

func NewRrProducer(senderSsrc, mediaSsrc uint32, clockRate int) *RrProducer {
	return &RrProducer{
		senderSsrc: senderSsrc,
		mediaSsrc:  mediaSsrc,
		clockRate:  clockRate,
		baseSeq:    -1,
		maxSeq:     -1,
	}
}

// FeedRtpPacket 每次收到rtp包，都将seq序号、rtp时间戳以及收到的时间传入这个函数
func (r *RrProducer) FeedRtpPacket(seq uint16, timestamp uint32, arrival time.Time) {
	r.received++

	if r.baseSeq == -1 {
		r.baseSeq = int32(seq)
		r.baseArrival = arrival
	}

	if r.maxSeq == -1 {
		r.maxSeq = int32(seq)
	} else {
		if CompareSeq(seq, uint16(r.maxSeq)) > 0 {
			if seq < uint16(r.maxSeq) {
				r.cycles++
			}
			r.maxSeq = int32(seq)
		}
	}

	r.extendedSeq = (r.cycles << 16) | uint32(r.maxSeq)

	r.updateJitter(timestamp, arrival)
}

// OnSenderReport 收到对端的sr包时调用
//
// @param msw, lsw: sr包中的ntp时间戳
// @param arrival:  收到sr包的时间，用于计算DLSR
func (r *RrProducer) OnSenderReport(msw, lsw uint32, arrival time.Time) {
	r.lsr = MiddleNtp(msw, lsw)
	r.srArrival = arrival
}

// Produce 产生一个只包含一个report block的rr包
//
// @return ok: 还没有收到过rtp包时返回false
func (r *RrProducer) Produce(now time.Time) (rr Rr, ok bool) {
	if r.baseSeq == -1 {
		return rr, false
	}

	// 收到重复包时，lost可能为负数
	expected := int64(r.extendedSeq) - int64(r.baseSeq) + 1
	lost := expected - int64(r.received)
	if lost > PacketsLostMax {
		Log.Warnf("packets lost overflow, clamp it. ssrc=%d, lost=%d", r.mediaSsrc, lost)
		lost = PacketsLostMax
	} else if lost < PacketsLostMin {
		Log.Warnf("packets lost underflow, clamp it. ssrc=%d, lost=%d", r.mediaSsrc, lost)
		lost = PacketsLostMin
	}

	var fraction uint8
	expectedInterval := expected - r.expectedPrior
	r.expectedPrior = expected
	receivedInterval := int64(r.received) - r.receivedPrior
	r.receivedPrior = int64(r.received)
	lostInterval := expectedInterval - receivedInterval
	if expectedInterval != 0 && lostInterval > 0 {
		// 区间内至少收到了一个包，所以结果小于256
		fraction = uint8((lostInterval << 8) / expectedInterval)
	}

	var dlsr uint32
	if r.lsr != 0 {
		dlsr = Dlsr(now.Sub(r.srArrival))
	}

	rr.SenderSsrc = r.senderSsrc
	rr.Reports = []ReportBlock{
		{
			Ssrc:         r.mediaSsrc,
			FractionLost: fraction,
			PacketsLost:  int32(lost),
			HighestSeq:   r.extendedSeq,
			Jitter:       r.getJitter(),
			Lsr:          r.lsr,
			Dlsr:         dlsr,
		},
	}
	return rr, true
}

// @param timestamp 当前收到的rtp包头中的时间戳
func (r *RrProducer) updateJitter(timestamp uint32, arrival time.Time) {
	// 物理时间和包时间的差值，都换算成包时间戳格式，用uint32计算以处理时间戳翻转
	arrivalUs := int64(arrival.Sub(r.baseArrival) / time.Microsecond)
	transit := uint32(arrivalUs*int64(r.clockRate)/1e6) - timestamp

	// 第一次跳过
	if !r.hasTransit {
		r.transit = transit
		r.hasTransit = true
		return
	}

	// 这次差值，和上一次差值相减
	d := int64(int32(transit - r.transit))
	r.transit = transit
	if d < 0 {
		d = -d
	}

	// J(i) = J(i-1) + (|D(i-1,i)| - J(i-1))/16
	// 这里jitter放大了16倍保存，对应的get: return r.jitter >> 4
	r.jitter = r.jitter + uint32(d) - ((r.jitter + 8) >> 4)
}

func (r *RrProducer) getJitter() uint32 {
	return r.jitter >> 4
}
