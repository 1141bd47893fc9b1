package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/twich/internal/application/port/mocks"
)

const home = "https://www.twitch.tv/"

func TestNavigate_BackUsesHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	browser := mocks.NewMockBrowserSurface(ctrl)

	gomock.InOrder(
		browser.EXPECT().CanGoBack().Return(true),
		browser.EXPECT().GoBack(),
	)

	NewNavigateUseCase(browser, home).Back(context.Background())
}

func TestNavigate_BackWithoutHistoryGoesHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	browser := mocks.NewMockBrowserSurface(ctrl)

	gomock.InOrder(
		browser.EXPECT().CanGoBack().Return(false),
		browser.EXPECT().LoadURI(home),
	)

	NewNavigateUseCase(browser, home).Back(context.Background())
}

func TestNavigate_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	browser := mocks.NewMockBrowserSurface(ctrl)
	browser.EXPECT().LoadURI("https://www.twitch.tv/directory")

	uc := NewNavigateUseCase(browser, home)
	require.NoError(t, uc.Open(context.Background(), "  www.twitch.tv/directory "))
	assert.ErrorIs(t, uc.Open(context.Background(), "   "), ErrInvalidURL)
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "twitch.tv", want: "https://twitch.tv"},
		{in: "http://localhost:8080/x", want: "http://localhost:8080/x"},
		{in: "about:blank", want: "about:blank"},
		{in: "", wantErr: true},
		{in: "https://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeURL(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
