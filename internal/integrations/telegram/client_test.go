package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/domain"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/logger"
)

type fakeSender struct {
	sent []*bot.SendMessageParams
	err  error
}

func (f *fakeSender) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &models.Message{}, nil
}

func TestAnnouncer_SendsKnownReasons(t *testing.T) {
	sender := &fakeSender{}
	a := NewAnnouncer(sender, -100500, logger.NewNop())

	require.NoError(t, a.Announce(context.Background(), domain.ReasonSlotReleased))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(-100500), sender.sent[0].ChatID)
	assert.Equal(t, msgSlotReleased, sender.sent[0].Text)
}

func TestAnnouncer_MessagePerReason(t *testing.T) {
	tests := []struct {
		reason string
		want   string
	}{
		{domain.ReasonServiceTimeAdded, msgServiceTimeAdded},
		{domain.ReasonServiceTimeDeleted, msgServiceTimeDeleted},
		{domain.ReasonWeekCopied, msgWeekCopied},
		{domain.ReasonCalendarReset, msgCalendarReset},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			sender := &fakeSender{}
			require.NoError(t, NewAnnouncer(sender, 1, logger.NewNop()).Announce(context.Background(), tt.reason))
			require.Len(t, sender.sent, 1)
			assert.Equal(t, tt.want, sender.sent[0].Text)
		})
	}
}

func TestAnnouncer_SkipsQuietReasons(t *testing.T) {
	sender := &fakeSender{}
	a := NewAnnouncer(sender, 1, logger.NewNop())

	require.NoError(t, a.Announce(context.Background(), domain.ReasonSlotAssigned))
	assert.Empty(t, sender.sent)
}

func TestAnnouncer_WrapsSendErrors(t *testing.T) {
	a := NewAnnouncer(&fakeSender{err: errors.New("boom")}, 1, logger.NewNop())

	err := a.Announce(context.Background(), domain.ReasonWeekCopied)
	assert.ErrorIs(t, err, ErrSendMessage)
}
