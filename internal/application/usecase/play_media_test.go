package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/twich/internal/application/port/mocks"
	"github.com/bnema/twich/internal/domain/entity"
)

func TestPlayMedia_ReplacesCurrentPlayback(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockMediaEngine(ctrl)
	first := mocks.NewMockMediaHandle(ctrl)
	second := mocks.NewMockMediaHandle(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		engine.EXPECT().NewMedia(gomock.Any(), "https://cdn.example.com/a.m3u8").Return(first, nil),
		engine.EXPECT().Play(gomock.Any(), first).Return(nil),
		engine.EXPECT().NewMedia(gomock.Any(), "https://cdn.example.com/b.m3u8").Return(second, nil),
		engine.EXPECT().Play(gomock.Any(), second).Return(nil),
	)

	uc := NewPlayMediaUseCase(engine)

	played, err := uc.Execute(ctx, "https://cdn.example.com/a.m3u8")
	require.NoError(t, err)
	assert.True(t, played)

	played, err = uc.Execute(ctx, "  https://cdn.example.com/b.m3u8\n")
	require.NoError(t, err)
	assert.True(t, played)

	s := uc.Session()
	assert.Equal(t, entity.PlaybackPlaying, s.State)
	assert.Equal(t, "https://cdn.example.com/b.m3u8", s.MediaURL)
}

func TestPlayMedia_BlankOrInvalidInputIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockMediaEngine(ctrl)
	handle := mocks.NewMockMediaHandle(ctrl)
	ctx := context.Background()

	engine.EXPECT().NewMedia(gomock.Any(), "https://cdn.example.com/live.m3u8").Return(handle, nil)
	engine.EXPECT().Play(gomock.Any(), handle).Return(nil)

	uc := NewPlayMediaUseCase(engine)
	_, err := uc.Execute(ctx, "https://cdn.example.com/live.m3u8")
	require.NoError(t, err)
	before := uc.Session()

	for _, in := range []string{"", "   ", "\t\n", "not a url", "/relative.mp4"} {
		played, err := uc.Execute(ctx, in)
		assert.NoError(t, err, in)
		assert.False(t, played, in)
	}

	assert.Equal(t, before, uc.Session())
}

func TestPlayMedia_EngineFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockMediaEngine(ctrl)
	handle := mocks.NewMockMediaHandle(ctrl)
	ctx := context.Background()

	engine.EXPECT().NewMedia(gomock.Any(), "https://cdn.example.com/a.m3u8").Return(nil, errors.New("unsupported"))
	engine.EXPECT().NewMedia(gomock.Any(), "https://cdn.example.com/b.m3u8").Return(handle, nil)
	engine.EXPECT().Play(gomock.Any(), handle).Return(errors.New("no sink"))

	uc := NewPlayMediaUseCase(engine)

	played, err := uc.Execute(ctx, "https://cdn.example.com/a.m3u8")
	assert.Error(t, err)
	assert.False(t, played)

	played, err = uc.Execute(ctx, "https://cdn.example.com/b.m3u8")
	assert.Error(t, err)
	assert.False(t, played)

	assert.Equal(t, entity.PlaybackIdle, uc.Session().State)
}

func TestPlayMedia_CloseIsFinalAndIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockMediaEngine(ctrl)
	ctx := context.Background()

	engine.EXPECT().Close().Times(1)

	uc := NewPlayMediaUseCase(engine)
	uc.Close(ctx)
	uc.Close(ctx)

	played, err := uc.Execute(ctx, "https://cdn.example.com/a.m3u8")
	assert.ErrorIs(t, err, ErrPlayerClosed)
	assert.False(t, played)
	assert.Equal(t, entity.PlaybackClosed, uc.Session().State)
}
