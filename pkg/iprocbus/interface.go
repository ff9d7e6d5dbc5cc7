/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iprocbus

type ServiceChannel chan interface{}

// One per processing host
type IProcBus interface {
	// Used during wiring
	// This channel should be used by a worker service to get its messages
	ServiceChannel(groupIdx uint, channelIdx uint) ServiceChannel

	// Message is submitted to the channel defined by groupIdx, channelIdx.
	// Submit never blocks: a full channel means ok == false, the caller
	// handles the backpressure.
	Submit(groupIdx uint, channelIdx uint, msg interface{}) (ok bool)
}
