package hook

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/domain"
)

// recorder returns a hook that appends name to trace and passes the context through
func recorder(trace *[]string, name string) Func {
	return func(ctx context.Context, hc Context) (Context, error) {
		*trace = append(*trace, name)
		return hc, nil
	}
}

func failing(trace *[]string, name string, err error) Func {
	return func(ctx context.Context, hc Context) (Context, error) {
		*trace = append(*trace, name)
		return hc, err
	}
}

func echo(trace *[]string) Executor {
	return func(ctx context.Context, hc Context) (any, error) {
		*trace = append(*trace, "execute")
		return hc.Data, nil
	}
}

func TestRunPhaseOrder(t *testing.T) {
	var trace []string
	r := NewRegistry()
	r.Register(Set{
		Before: map[Method][]Func{
			MethodCreate: {recorder(&trace, "before-create-1"), recorder(&trace, "before-create-2")},
			MethodAll:    {recorder(&trace, "before-all")},
		},
		After: map[Method][]Func{
			MethodCreate: {recorder(&trace, "after-create")},
			MethodAll:    {recorder(&trace, "after-all")},
		},
	})

	hc, err := r.Run(context.Background(), Context{Path: "messages", Method: MethodCreate}, echo(&trace))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"before-all", "before-create-1", "before-create-2",
		"execute",
		"after-all", "after-create",
	}, trace)
	assert.Equal(t, PhaseAfter, hc.Phase)
}

func TestRunOnlyMatchingMethod(t *testing.T) {
	var trace []string
	r := NewRegistry()
	r.Register(Set{Before: map[Method][]Func{MethodPatch: {recorder(&trace, "before-patch")}}})

	_, err := r.Run(context.Background(), Context{Method: MethodCreate}, echo(&trace))
	require.NoError(t, err)
	assert.Equal(t, []string{"execute"}, trace)
}

func TestRegisterAppends(t *testing.T) {
	var trace []string
	r := NewRegistry()
	r.Register(Set{Before: map[Method][]Func{MethodCreate: {recorder(&trace, "first")}}})
	r.Register(Set{Before: map[Method][]Func{MethodCreate: {recorder(&trace, "second")}}})

	_, err := r.Run(context.Background(), Context{Method: MethodCreate}, echo(&trace))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "execute"}, trace)
}

func TestRunBeforeTransformsData(t *testing.T) {
	r := NewRegistry()
	r.Register(Set{Before: map[Method][]Func{
		MethodCreate: {
			func(ctx context.Context, hc Context) (Context, error) {
				hc.Data = hc.Data.With("stamp", 1)
				return hc, nil
			},
			func(ctx context.Context, hc Context) (Context, error) {
				hc.Data["second"] = true
				return hc, nil
			},
		},
	}})

	input := domain.Data{"text": "hi"}
	var got domain.Data
	_, err := r.Run(context.Background(), Context{Method: MethodCreate, Data: input},
		func(ctx context.Context, hc Context) (any, error) {
			got = hc.Data
			return nil, nil
		})
	require.NoError(t, err)

	assert.Equal(t, domain.Data{"text": "hi", "stamp": 1, "second": true}, got)
	assert.Equal(t, domain.Data{"text": "hi"}, input, "caller data must not be mutated")
}

func TestRunBeforeErrorShortCircuits(t *testing.T) {
	var trace []string
	boom := errors.New("boom")
	var observed Context

	r := NewRegistry()
	r.Register(Set{
		Before: map[Method][]Func{
			MethodCreate: {failing(&trace, "reject", boom), recorder(&trace, "never")},
		},
		After: map[Method][]Func{
			MethodCreate: {recorder(&trace, "after")},
		},
		Error: map[Method][]ErrorFunc{
			MethodAll: {func(ctx context.Context, hc Context) {
				trace = append(trace, "error")
				observed = hc
			}},
		},
	})

	_, err := r.Run(context.Background(), Context{Path: "messages", Method: MethodCreate}, echo(&trace))
	assert.Same(t, boom, err)
	assert.Equal(t, []string{"reject", "error"}, trace)
	assert.Equal(t, PhaseError, observed.Phase)
	assert.Equal(t, "messages", observed.Path)
	assert.Equal(t, MethodCreate, observed.Method)
	assert.Same(t, boom, observed.Err)
}

func TestRunExecuteErrorRunsErrorHooks(t *testing.T) {
	var trace []string
	boom := errors.New("boom")

	r := NewRegistry()
	r.Register(Set{
		After: map[Method][]Func{MethodGet: {recorder(&trace, "after")}},
		Error: map[Method][]ErrorFunc{MethodGet: {func(ctx context.Context, hc Context) {
			trace = append(trace, "error")
		}}},
	})

	_, err := r.Run(context.Background(), Context{Method: MethodGet}, func(ctx context.Context, hc Context) (any, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"error"}, trace)
}

func TestRunAfterErrorRunsErrorHooks(t *testing.T) {
	var trace []string
	boom := errors.New("after failed")

	r := NewRegistry()
	r.Register(Set{
		After: map[Method][]Func{MethodRemove: {failing(&trace, "after", boom)}},
		Error: map[Method][]ErrorFunc{MethodRemove: {func(ctx context.Context, hc Context) {
			trace = append(trace, "error")
			assert.NotNil(t, hc.Result)
		}}},
	})

	_, err := r.Run(context.Background(), Context{Method: MethodRemove, Data: domain.Data{}}, echo(&trace))
	assert.Same(t, boom, err)
	assert.Equal(t, []string{"execute", "after", "error"}, trace)
}

func TestRunBeforeResultSkipsExecute(t *testing.T) {
	var trace []string
	r := NewRegistry()
	r.Register(Set{Before: map[Method][]Func{MethodFind: {
		func(ctx context.Context, hc Context) (Context, error) {
			hc.Result = "cached"
			return hc, nil
		},
	}}})

	hc, err := r.Run(context.Background(), Context{Method: MethodFind}, echo(&trace))
	require.NoError(t, err)
	assert.Equal(t, "cached", hc.Result)
	assert.Empty(t, trace)
}

func TestRunRestoresIdentity(t *testing.T) {
	r := NewRegistry()
	r.Register(Set{Before: map[Method][]Func{MethodCreate: {
		func(ctx context.Context, hc Context) (Context, error) {
			return Context{Path: "elsewhere", Method: MethodRemove, Data: hc.Data}, nil
		},
	}}})

	hc, err := r.Run(context.Background(), Context{CallID: "call-1", Path: "messages", Method: MethodCreate}, echo(new([]string)))
	require.NoError(t, err)
	assert.Equal(t, "call-1", hc.CallID)
	assert.Equal(t, "messages", hc.Path)
	assert.Equal(t, MethodCreate, hc.Method)
}

func TestRunAssignsCallID(t *testing.T) {
	r := NewRegistry()
	hc, err := r.Run(context.Background(), Context{Method: MethodFind}, echo(new([]string)))
	require.NoError(t, err)

	parsed, err := uuid.Parse(hc.CallID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestChain(t *testing.T) {
	var trace []string
	boom := errors.New("stop")

	chained := Chain(recorder(&trace, "a"), failing(&trace, "b", boom), recorder(&trace, "c"))
	_, err := chained(context.Background(), Context{})

	assert.Same(t, boom, err)
	assert.Equal(t, []string{"a", "b"}, trace)
}

func TestRunFinishHooks(t *testing.T) {
	boom := errors.New("bad result")

	t.Run("run after registered after hooks", func(t *testing.T) {
		var trace []string
		r := NewRegistry()
		r.Register(Set{After: map[Method][]Func{MethodAll: {recorder(&trace, "after-all")}}})

		_, err := r.Run(context.Background(), Context{Method: MethodGet}, echo(&trace), recorder(&trace, "finish"))
		require.NoError(t, err)
		assert.Equal(t, []string{"execute", "after-all", "finish"}, trace)
	})

	t.Run("failure reaches error hooks", func(t *testing.T) {
		var trace []string
		var failed []Context
		r := NewRegistry()
		r.Register(Set{Error: map[Method][]ErrorFunc{
			MethodGet: {func(ctx context.Context, hc Context) { failed = append(failed, hc) }},
		}})

		_, err := r.Run(context.Background(), Context{Method: MethodGet}, echo(&trace), failing(&trace, "finish", boom))
		assert.ErrorIs(t, err, boom)
		require.Len(t, failed, 1)
		assert.Equal(t, PhaseError, failed[0].Phase)
		assert.ErrorIs(t, failed[0].Err, boom)
	})
}
