package cereal

import (
	"capnproto.org/go/capnp/v3"
)

func OnroadStateReader(msg *capnp.Message) (OnroadState, error) {
	return ReadRootOnroadState(msg)
}

func OnroadStateCreator(seg *capnp.Segment) (OnroadState, error) {
	return NewRootOnroadState(seg)
}
