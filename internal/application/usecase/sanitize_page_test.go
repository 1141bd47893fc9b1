package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/application/port/mocks"
)

func TestSanitizePage_RunsScriptOnEveryLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	browser := mocks.NewMockBrowserSurface(ctrl)

	const script = "const selectors = [];\nreturn '0';"
	results := []struct {
		raw string
		err error
	}{
		{raw: "4"},
		{raw: "0"},
		{err: errors.New("page navigated away")},
	}
	i := 0
	browser.EXPECT().
		EvaluateScript(gomock.Any(), script, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, cb port.ScriptCallback) {
			r := results[i]
			i++
			cb(r.raw, r.err)
		}).
		Times(len(results))

	uc := NewSanitizePageUseCase(browser, script)
	for range results {
		uc.Execute(context.Background(), "https://www.twitch.tv/")
	}
}

func TestSanitizePage_EmptyScriptDisables(t *testing.T) {
	ctrl := gomock.NewController(t)
	browser := mocks.NewMockBrowserSurface(ctrl)

	NewSanitizePageUseCase(browser, "").Execute(context.Background(), "https://www.twitch.tv/")
}
