package cereal

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"

	"pfeifer.dev/onroad/settings"
	"pfeifer.dev/onroad/utils"
)

const ONROAD_STATE = "onroadState"

type MessageCreator[T any] func(*capnp.Segment) (T, error)

type Publisher[T any] struct {
	Pub     gomsgq.MsgqPublisher
	creator MessageCreator[T]
}

func (p *Publisher[T]) Send(msg *capnp.Message) error {
	b, err := msg.Marshal()
	if err != nil {
		return errors.Wrap(err, "could not marshal message")
	}
	p.Pub.Send(b)
	return nil
}

func (p *Publisher[T]) NewMessage() (msg *capnp.Message, obj T) {
	return NewMessage(p.creator)
}

// NewMessage allocates a single segment message with a root built by creator.
func NewMessage[T any](creator MessageCreator[T]) (msg *capnp.Message, obj T) {
	arena := capnp.SingleSegment(nil)

	msg, seg, err := capnp.NewMessage(arena)
	if err != nil {
		panic(err)
	}

	obj, err = creator(seg)
	if err != nil {
		panic(err)
	}

	return msg, obj
}

func NewPublisher[T any](name string, creator MessageCreator[T]) (publisher Publisher[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, settings.DEFAULT_SEGMENT_SIZE)
	utils.Check(err)
	pub := gomsgq.MsgqPublisher{}
	pub.Init(msgq)

	publisher.Pub = pub
	publisher.creator = creator
	return publisher
}

func NewOnroadStatePublisher() Publisher[OnroadState] {
	return NewPublisher(ONROAD_STATE, OnroadStateCreator)
}
