/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iprocbusmem

import (
	"github.com/drnecj/UPBL09a/pkg/iprocbus"
)

type ChannelGroup struct {
	NumChannels       uint
	ChannelBufferSize uint
}

func Provide(channelGroups []ChannelGroup) iprocbus.IProcBus {
	bus := &implIProcBus{chans: make([][]iprocbus.ServiceChannel, len(channelGroups))}
	for groupIdx, group := range channelGroups {
		bus.chans[groupIdx] = make([]iprocbus.ServiceChannel, group.NumChannels)
		for channelIdx := range bus.chans[groupIdx] {
			bus.chans[groupIdx][channelIdx] = make(iprocbus.ServiceChannel, group.ChannelBufferSize)
		}
	}
	return bus
}
