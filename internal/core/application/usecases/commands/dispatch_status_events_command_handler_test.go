package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func statusEvents(n int) []order.StatusChangedEvent {
	events := make([]order.StatusChangedEvent, 0, n)
	for range n {
		events = append(events, order.NewStatusChangedEvent(
			kernel.NewUUID(), order.Created, order.AwaitingPayment, order.SourceOrder, time.Now().UTC()))
	}
	return events
}

func TestDispatchStatusEventsCommandHandler_Handle_PublishesAll(t *testing.T) {
	ctx := t.Context()
	events := statusEvents(3)
	cmd, err := commands.NewDispatchStatusEventsCommand(10)
	require.NoError(t, err)

	eventRepo := new(MockEventRepository)
	notifier := new(MockStatusNotifier)
	uow := new(MockEventUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("EventRepository").Return(eventRepo)
	eventRepo.On("GetUnpublished", mock.Anything, 10).Return(events, nil).Once()
	for _, event := range events {
		notifier.On("Notify", mock.Anything, event).Return(nil).Once()
	}
	eventRepo.On("MarkPublished", mock.Anything,
		[]kernel.UUID{events[0].ID, events[1].ID, events[2].ID}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockEventUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchStatusEventsCommandHandler(factory, notifier)
	n, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	notifier.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
}

func TestDispatchStatusEventsCommandHandler_Handle_StopsAtFirstFailure(t *testing.T) {
	ctx := t.Context()
	events := statusEvents(3)
	cmd, err := commands.NewDispatchStatusEventsCommand(10)
	require.NoError(t, err)

	eventRepo := new(MockEventRepository)
	notifier := new(MockStatusNotifier)
	uow := new(MockEventUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("EventRepository").Return(eventRepo)
	eventRepo.On("GetUnpublished", mock.Anything, 10).Return(events, nil).Once()
	notifier.On("Notify", mock.Anything, events[0]).Return(nil).Once()
	notifier.On("Notify", mock.Anything, events[1]).Return(errors.New("notifier down")).Once()
	// only the delivered prefix is marked, the rest is retried next pass
	eventRepo.On("MarkPublished", mock.Anything, []kernel.UUID{events[0].ID}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockEventUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchStatusEventsCommandHandler(factory, notifier)
	n, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, 1, n)
	notifier.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
}

func TestDispatchStatusEventsCommandHandler_Handle_NothingToDo(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDispatchStatusEventsCommand(10)
	require.NoError(t, err)

	eventRepo := new(MockEventRepository)
	notifier := new(MockStatusNotifier)
	uow := new(MockEventUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("GetUnpublished", mock.Anything, 10).Return([]order.StatusChangedEvent{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEventUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchStatusEventsCommandHandler(factory, notifier)
	n, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
