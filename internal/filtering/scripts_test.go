package filtering

import (
	"os"
	"strings"
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/twich/internal/domain/entity"
)

func newPageRuntime(t *testing.T, setup string) *sobek.Runtime {
	t.Helper()

	dom, err := os.ReadFile("testdata/dom.js")
	require.NoError(t, err)

	vm := sobek.New()
	_, err = vm.RunString(string(dom))
	require.NoError(t, err)

	_, err = vm.RunString(setup)
	require.NoError(t, err)
	return vm
}

func runPiP(t *testing.T, vm *sobek.Runtime) entity.PiPResult {
	t.Helper()

	v, err := vm.RunString("(async function() {\n" + PiPScript() + "\n})()")
	require.NoError(t, err)

	p, ok := v.Export().(*sobek.Promise)
	require.True(t, ok, "payload must evaluate to a promise")
	require.Equal(t, sobek.PromiseStateFulfilled, p.State())
	return entity.ParsePiPResult(p.Result().String())
}

func jsInt(t *testing.T, vm *sobek.Runtime, expr string) int64 {
	t.Helper()
	v, err := vm.RunString(expr)
	require.NoError(t, err)
	return v.ToInteger()
}

func jsString(t *testing.T, vm *sobek.Runtime, expr string) string {
	t.Helper()
	v, err := vm.RunString(expr)
	require.NoError(t, err)
	return v.String()
}

func TestPiPScript_PrefersVideoInsidePlayerContainer(t *testing.T) {
	vm := newPageRuntime(t, `resetDocument([
		video({id: 'preview', paused: false, readyState: 4}),
		h('div', {'class': 'video-player__container'}, [
			h('div', {'data-a-target': 'player-overlay-click-handler'}),
			video({id: 'main'}),
		]),
	]);`)

	res := runPiP(t, vm)

	assert.Equal(t, entity.PiPOutcomeOK, res.Outcome)
	assert.Equal(t, "main", jsString(t, vm, "document.pictureInPictureElement.id"))
	assert.EqualValues(t, 1, jsInt(t, vm, "calls.requestPiP"))
}

func TestPiPScript_ContainerClassVariants(t *testing.T) {
	for _, class := range []string{"video-player__container", "persistent-player", "channel-root"} {
		t.Run(class, func(t *testing.T) {
			vm := newPageRuntime(t, `resetDocument([
				video({id: 'other', paused: false, readyState: 4}),
				h('section', {'class': 'layout `+class+`'}, [
					h('div', {}, [h('div', {'data-a-target': 'player-overlay-click-handler'})]),
					h('div', {}, [video({id: 'nested'})]),
				]),
			]);`)

			res := runPiP(t, vm)

			assert.True(t, res.OK())
			assert.Equal(t, "nested", jsString(t, vm, "document.pictureInPictureElement.id"))
		})
	}
}

func TestPiPScript_FallsBackToPlayingVideo(t *testing.T) {
	vm := newPageRuntime(t, `resetDocument([
		video({id: 'first', paused: true, readyState: 4}),
		video({id: 'second', paused: false, readyState: 4}),
	]);`)

	res := runPiP(t, vm)

	assert.True(t, res.OK())
	assert.Equal(t, "second", jsString(t, vm, "document.pictureInPictureElement.id"))
}

func TestPiPScript_OverlayWithoutContainerFallsBack(t *testing.T) {
	vm := newPageRuntime(t, `resetDocument([
		h('div', {'data-a-target': 'player-overlay-click-handler'}),
		video({id: 'buffering', paused: false, readyState: 1}),
		video({id: 'ended', paused: false, ended: true, readyState: 4}),
	]);`)

	res := runPiP(t, vm)

	// nothing qualifies as playing, so the first video in document order wins
	assert.True(t, res.OK())
	assert.Equal(t, "buffering", jsString(t, vm, "document.pictureInPictureElement.id"))
}

func TestPiPScript_NoVideo(t *testing.T) {
	vm := newPageRuntime(t, `resetDocument([h('div', {'class': 'channel-root'})]);
		document.fullscreenElement = document.documentElement;`)

	res := runPiP(t, vm)

	assert.Equal(t, entity.PiPOutcomeNoVideo, res.Outcome)
	assert.EqualValues(t, 0, jsInt(t, vm, "calls.requestPiP + calls.exitPiP + calls.exitFullscreen"))
}

func TestPiPScript_AlreadyFloatingIsSatisfied(t *testing.T) {
	vm := newPageRuntime(t, `resetDocument([video({id: 'only', paused: false, readyState: 4})]);`)

	first := runPiP(t, vm)
	second := runPiP(t, vm)
	third := runPiP(t, vm)

	assert.True(t, first.OK())
	assert.True(t, second.OK())
	assert.True(t, third.OK())
	assert.EqualValues(t, 1, jsInt(t, vm, "calls.requestPiP"))
	assert.EqualValues(t, 0, jsInt(t, vm, "calls.exitPiP"))
}

func TestPiPScript_SwitchesFromOtherElement(t *testing.T) {
	vm := newPageRuntime(t, `resetDocument([
		video({id: 'old'}),
		video({id: 'live', paused: false, readyState: 3}),
	]);
	document.pictureInPictureElement = document.querySelectorAll('video')[0];`)

	res := runPiP(t, vm)

	assert.True(t, res.OK())
	assert.EqualValues(t, 1, jsInt(t, vm, "calls.exitPiP"))
	assert.Equal(t, "live", jsString(t, vm, "document.pictureInPictureElement.id"))
}

func TestPiPScript_BestEffortStepsDoNotAbort(t *testing.T) {
	vm := newPageRuntime(t, `resetDocument([
		video({id: 'old'}),
		video({id: 'live', paused: false, readyState: 4}),
	]);
	document.pictureInPictureElement = document.querySelectorAll('video')[0];
	document.fullscreenElement = document.documentElement;
	failures.exitPiP = true;
	failures.exitFullscreen = true;`)

	res := runPiP(t, vm)

	assert.True(t, res.OK())
	assert.EqualValues(t, 1, jsInt(t, vm, "calls.exitPiP"))
	assert.EqualValues(t, 1, jsInt(t, vm, "calls.exitFullscreen"))
	assert.EqualValues(t, 1, jsInt(t, vm, "calls.requestPiP"))
}

func TestPiPScript_ExitsFullscreenFirst(t *testing.T) {
	vm := newPageRuntime(t, `resetDocument([video({id: 'v', paused: false, readyState: 4})]);
		document.fullscreenElement = document.querySelector('video');`)

	res := runPiP(t, vm)

	assert.True(t, res.OK())
	assert.EqualValues(t, 1, jsInt(t, vm, "calls.exitFullscreen"))
	assert.Equal(t, "null", jsString(t, vm, "String(document.fullscreenElement)"))
}

func TestPiPScript_RequestFailureIsReported(t *testing.T) {
	vm := newPageRuntime(t, `resetDocument([video({id: 'v'})]);
		failures.requestPiP = 'NotAllowedError: user gesture required';`)

	res := runPiP(t, vm)

	assert.Equal(t, entity.PiPOutcomeError, res.Outcome)
	assert.Equal(t, "NotAllowedError: user gesture required", res.Message)
}

func TestPiPScript_UnsupportedEngine(t *testing.T) {
	vm := newPageRuntime(t, `resetDocument([video({id: 'v', paused: false, readyState: 4})]);
		delete Video.prototype.requestPictureInPicture;`)

	res := runPiP(t, vm)

	assert.True(t, res.Unsupported())
	assert.Equal(t, entity.PiPUnsupportedMessage, res.Message)
	assert.EqualValues(t, 0, jsInt(t, vm, "calls.requestPiP + calls.exitPiP + calls.exitFullscreen"))
}

func TestPiPScript_UnsupportedStillReportsNoVideo(t *testing.T) {
	vm := newPageRuntime(t, `resetDocument([]);
		HTMLVideoElement = undefined;`)

	res := runPiP(t, vm)

	assert.Equal(t, entity.PiPOutcomeNoVideo, res.Outcome)
}

func TestSanitizeScript_RemovesAndIsIdempotent(t *testing.T) {
	s, err := NewSanitizer(DefaultRuleSet().Sanitize)
	require.NoError(t, err)

	vm := newPageRuntime(t, `resetDocument([
		h('div', {id: 'ad-top'}, [h('span', {'class': 'sponsor-label'})]),
		h('main', {id: 'content'}, [
			h('p', {}, []),
			h('aside', {'class': 'promo-box'}),
			h('div', {'class': 'googlesyndication'}),
		]),
		h('nav', {id: 'menu'}),
	]);`)

	call := "(function() {\n" + s.Script() + "\n})()"

	first, err := vm.RunString(call)
	require.NoError(t, err)
	once := jsString(t, vm, "document.documentElement.serialize()")

	second, err := vm.RunString(call)
	require.NoError(t, err)
	twice := jsString(t, vm, "document.documentElement.serialize()")

	// the nested sponsor label leaves with its parent and is not counted
	assert.Equal(t, "3", first.String())
	assert.Equal(t, "0", second.String())
	assert.Equal(t, once, twice)
	assert.Equal(t,
		`<html><body><main id="content"><p></p></main><nav id="menu"></nav></body></html>`,
		once)
}

func TestSanitizeScript_NestedCountMatchesGoquery(t *testing.T) {
	s, err := NewSanitizer(DefaultRuleSet().Sanitize)
	require.NoError(t, err)

	vm := newPageRuntime(t, `resetDocument([
		h('div', {id: 'ad-outer'}, [h('div', {id: 'ad-inner'})]),
		h('main', {id: 'content'}),
	]);`)
	got, err := vm.RunString("(function() {\n" + s.Script() + "\n})()")
	require.NoError(t, err)

	_, report, err := s.ApplyHTML(strings.NewReader(
		`<html><body><div id="ad-outer"><div id="ad-inner"></div></div><main id="content"></main></body></html>`))
	require.NoError(t, err)

	assert.Equal(t, "1", got.String())
	assert.Equal(t, 1, report.Removed)
}

func TestSanitizeScript_EmbedsSelectorsInOrder(t *testing.T) {
	rules := DefaultRuleSet().Sanitize
	script, err := SanitizeScript(rules)
	require.NoError(t, err)

	decl, _, ok := strings.Cut(script, "\n")
	require.True(t, ok)

	vm := sobek.New()
	v, err := vm.RunString("(function() {\n" + decl + "\nreturn selectors.join('|');\n})()")
	require.NoError(t, err)

	want := make([]string, 0, len(rules))
	for _, r := range rules {
		want = append(want, r.Selector())
	}
	assert.Equal(t, strings.Join(want, "|"), v.String())
}
