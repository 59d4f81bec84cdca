package walk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/glosswalk/core"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, term string) ([]core.Definition, error) {
	args := m.Called(ctx, term)
	defs, _ := args.Get(0).([]core.Definition)
	return defs, args.Error(1)
}

// eventPresenter records every call as a readable event string.
type eventPresenter struct {
	events []string
}

func (p *eventPresenter) Term(term string, index, total int) error {
	p.events = append(p.events, fmt.Sprintf("term %s (%d/%d)", term, index, total))
	return nil
}

func (p *eventPresenter) Definition(def core.Definition) error {
	p.events = append(p.events, "def "+def.Title)
	return nil
}

func (p *eventPresenter) Prompt() error {
	p.events = append(p.events, ">")
	return nil
}

type countingAdvancer struct {
	calls int
	err   error
}

func (a *countingAdvancer) Advance(ctx context.Context) error {
	a.calls++
	return a.err
}

// panicReader fails the test if anything reads from it.
type panicReader struct{ t *testing.T }

func (r panicReader) Read(p []byte) (int, error) {
	r.t.Fatal("terms were read")
	return 0, nil
}

func TestRun_ResumesFromStartIndex(t *testing.T) {
	res := &mockResolver{}
	res.On("Resolve", mock.Anything, "bias").Return([]core.Definition{{Title: "Bias"}, {Title: "Cognitive Bias"}}, nil)
	res.On("Resolve", mock.Anything, "cortisol").Return([]core.Definition{}, nil)

	p := &eventPresenter{}
	adv := &countingAdvancer{}
	rec := &TranscriptRecorder{}
	w := &Walker{Resolver: res, Presenter: p, Advancer: adv, Recorder: rec}

	err := w.Run(context.Background(), strings.NewReader("anxiety\nbias\ncortisol\n"), 2)
	require.NoError(t, err)

	want := []string{
		"term bias (2/3)", "def Bias", "def Cognitive Bias", ">",
		"term cortisol (3/3)", ">",
	}
	if diff := cmp.Diff(want, p.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, adv.calls)
	res.AssertNotCalled(t, "Resolve", mock.Anything, "anxiety")
	res.AssertExpectations(t)

	require.Len(t, rec.Entries, 2)
	assert.Equal(t, core.TermEntry{Term: "cortisol", Index: 3, Total: 3, Definitions: []core.Definition{}}, rec.Entries[1])
	assert.Len(t, rec.Entries[0].Definitions, 2)
}

func TestRun_RejectsStartBelowOne(t *testing.T) {
	for _, start := range []int{0, -1} {
		res := &mockResolver{}
		w := &Walker{Resolver: res, Presenter: &eventPresenter{}, Advancer: &countingAdvancer{}}

		err := w.Run(context.Background(), panicReader{t}, start)
		assert.ErrorIs(t, err, core.ErrArgument)
		res.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	}
}

func TestRun_ResolverErrorAborts(t *testing.T) {
	res := &mockResolver{}
	res.On("Resolve", mock.Anything, "anxiety").Return(nil, fmt.Errorf("%w: no results container", core.ErrParse))

	p := &eventPresenter{}
	adv := &countingAdvancer{}
	w := &Walker{Resolver: res, Presenter: p, Advancer: adv}

	err := w.Run(context.Background(), strings.NewReader("anxiety\nbias\n"), 1)
	assert.ErrorIs(t, err, core.ErrParse)
	assert.Equal(t, []string{"term anxiety (1/2)"}, p.events)
	assert.Zero(t, adv.calls)
	res.AssertNotCalled(t, "Resolve", mock.Anything, "bias")
}

func TestRun_AdvanceErrorAborts(t *testing.T) {
	res := &mockResolver{}
	res.On("Resolve", mock.Anything, "anxiety").Return([]core.Definition{}, nil)

	adv := &countingAdvancer{err: fmt.Errorf("%w: stdin closed", core.ErrIO)}
	w := &Walker{Resolver: res, Presenter: &eventPresenter{}, Advancer: adv}

	err := w.Run(context.Background(), strings.NewReader("anxiety\nbias\n"), 1)
	assert.True(t, errors.Is(err, core.ErrIO))
	assert.Equal(t, 1, adv.calls)
	res.AssertNotCalled(t, "Resolve", mock.Anything, "bias")
}

func TestRun_StartPastEnd(t *testing.T) {
	res := &mockResolver{}
	p := &eventPresenter{}
	w := &Walker{Resolver: res, Presenter: p, Advancer: &countingAdvancer{}}

	err := w.Run(context.Background(), strings.NewReader("anxiety\nbias\n"), 5)
	require.NoError(t, err)
	assert.Empty(t, p.events)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		start     int
		wantTerms []string
		wantTotal int
	}{
		{
			name:      "from first line",
			input:     "anxiety\nbias\ncortisol\n",
			start:     1,
			wantTerms: []string{"anxiety", "bias", "cortisol"},
			wantTotal: 3,
		},
		{
			name:      "no trailing newline",
			input:     "anxiety\nbias",
			start:     1,
			wantTerms: []string{"anxiety", "bias"},
			wantTotal: 2,
		},
		{
			name:      "crlf line endings",
			input:     "anxiety\r\nbias\r\n",
			start:     1,
			wantTerms: []string{"anxiety", "bias"},
			wantTotal: 2,
		},
		{
			name:      "carriage return kept without newline",
			input:     "anxiety\r\nbias\r",
			start:     1,
			wantTerms: []string{"anxiety", "bias\r"},
			wantTotal: 2,
		},
		{
			name:      "empty lines are terms",
			input:     "anxiety\n\nbias\n",
			start:     2,
			wantTerms: []string{"", "bias"},
			wantTotal: 3,
		},
		{
			name:      "invalid line in remainder dropped",
			input:     "anxiety\nbi\xffas\ncortisol\n",
			start:     1,
			wantTerms: []string{"anxiety", "cortisol"},
			wantTotal: 2,
		},
		{
			name:      "invalid line in skipped prefix still counts",
			input:     "anx\xffiety\nbias\ncortisol\n",
			start:     2,
			wantTerms: []string{"bias", "cortisol"},
			wantTotal: 3,
		},
		{
			name:      "empty input",
			input:     "",
			start:     3,
			wantTerms: nil,
			wantTotal: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := Load(strings.NewReader(tt.input), tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTerms, state.Terms)
			assert.Equal(t, tt.wantTotal, state.TotalCount)
			assert.Equal(t, tt.start, state.StartIndex)
			assert.Equal(t, tt.start, state.CurrentIndex)
		})
	}
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestLoad_ReadError(t *testing.T) {
	_, err := Load(failingReader{}, 1)
	assert.ErrorIs(t, err, core.ErrIO)
}

func TestWalk_CurrentIndexStaysInRange(t *testing.T) {
	res := &mockResolver{}
	res.On("Resolve", mock.Anything, mock.Anything).Return([]core.Definition{}, nil)

	state, err := Load(strings.NewReader("a\nb\nc\nd\n"), 2)
	require.NoError(t, err)

	var seen []int
	p := &indexPresenter{seen: &seen}
	w := &Walker{Resolver: res, Presenter: p, Advancer: &countingAdvancer{}}
	require.NoError(t, w.Walk(context.Background(), state))

	assert.Equal(t, []int{2, 3, 4}, seen)
	for _, i := range seen {
		assert.GreaterOrEqual(t, i, state.StartIndex)
		assert.LessOrEqual(t, i, state.TotalCount)
	}
}

type indexPresenter struct {
	eventPresenter
	seen *[]int
}

func (p *indexPresenter) Term(term string, index, total int) error {
	*p.seen = append(*p.seen, index)
	return nil
}
