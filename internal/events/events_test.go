package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/recruit-go/internal/events"
	"github.com/linskybing/recruit-go/internal/events/mock"
	"github.com/stretchr/testify/assert"
)

func TestDispatch_PublishesInOrderAndSwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mock.NewMockPublisher(ctrl)

	var buf events.Buffer
	buf.Add(events.DocumentVerified, map[string]interface{}{"document_id": uint(1)})
	buf.Add(events.AllDocumentsVerified, map[string]interface{}{"assignment_id": uint(2)})

	gomock.InOrder(
		pub.EXPECT().Publish(gomock.Any(), events.DocumentVerified, gomock.Any()).Return(errors.New("broker down")),
		pub.EXPECT().Publish(gomock.Any(), events.AllDocumentsVerified, map[string]interface{}{"assignment_id": uint(2)}).Return(nil),
	)

	events.Dispatch(context.Background(), pub, buf.Events())
}

func TestDispatch_NilPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		events.Dispatch(context.Background(), nil, []events.Event{events.New(events.DocumentRejected, nil)})
	})
}

func TestBuffer_Reset(t *testing.T) {
	var buf events.Buffer
	buf.Add(events.DocumentRejected, nil)
	assert.Len(t, buf.Events(), 1)
	buf.Reset()
	assert.Empty(t, buf.Events())
}

func TestMulti_ReturnsFirstErrorButCallsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockPublisher(ctrl)
	b := mock.NewMockPublisher(ctrl)

	first := errors.New("first")
	a.EXPECT().Publish(gomock.Any(), events.CREAssigned, gomock.Any()).Return(first)
	b.EXPECT().Publish(gomock.Any(), events.CREAssigned, gomock.Any()).Return(errors.New("second"))

	err := events.Multi{a, b}.Publish(context.Background(), events.CREAssigned, nil)
	assert.Equal(t, first, err)
}

func TestRedisPublisher_Channel(t *testing.T) {
	assert.Equal(t, "recruit:document.verified", events.NewRedisPublisher(nil, "recruit").Channel(events.DocumentVerified))
	assert.Equal(t, "document.verified", events.NewRedisPublisher(nil, "").Channel(events.DocumentVerified))
}

func TestNewPublisher_WithoutRedisLogsOnly(t *testing.T) {
	p, closeFn := events.NewPublisher(context.Background(), "", "recruit")
	defer closeFn()
	_, ok := p.(events.LogPublisher)
	assert.True(t, ok)
	assert.NoError(t, p.Publish(context.Background(), events.RecruiterAssigned, map[string]interface{}{"candidate_id": 1}))
}
