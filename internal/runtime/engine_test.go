package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/htn/internal/runtime"
	"github.com/aretw0/htn/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a primitive behavior that remembers every input vector it saw.
type recorder struct {
	calls   [][]any
	payload any
	fail    string
}

func (r *recorder) Run(_ context.Context, inputs []any, _ domain.World) domain.Result {
	r.calls = append(r.calls, append([]any(nil), inputs...))
	if r.fail != "" {
		return domain.Fail(r.fail)
	}
	return domain.Succeed(r.payload)
}

func primitive(name string, b domain.Behavior, inputs int, outputs int) *domain.Action {
	in := make([]domain.Slot, inputs)
	for i := range in {
		in[i] = domain.NewSlot(name+"-in", domain.KindItem)
	}
	out := make([]domain.Slot, outputs)
	for i := range out {
		out[i] = domain.NewSlot(name+"-out", domain.KindItem)
	}
	return domain.NewPrimitive(name, b, in, out)
}

func TestExecute_PartitionedInputs(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	c := domain.NewComposite("seq")
	c.AddSubtask(primitive("one", first, 1, 0))
	c.AddSubtask(primitive("two", second, 2, 0))

	res := runtime.NewEngine().Execute(context.Background(), c, []any{"x", "y", "z"}, nil)

	require.True(t, res.Success, res.Reason)
	assert.Equal(t, [][]any{{"x"}}, first.calls)
	assert.Equal(t, [][]any{{"y", "z"}}, second.calls)
}

func TestExecute_SharedInputs(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	c := domain.NewComposite("shared")
	c.AddSubtask(primitive("one", first, 1, 0))
	c.AddSubtask(primitive("two", second, 2, 0))
	c.SharedInputs = true

	res := runtime.NewEngine().Execute(context.Background(), c, []any{"x", "y"}, nil)

	require.True(t, res.Success, res.Reason)
	assert.Equal(t, [][]any{{"x", "y"}}, first.calls)
	assert.Equal(t, [][]any{{"x", "y"}}, second.calls)
}

func TestExecute_UsesOwnSharedFlag(t *testing.T) {
	leaf1, leaf2, tail := &recorder{}, &recorder{}, &recorder{}

	inner := domain.NewComposite("inner")
	inner.AddSubtask(primitive("leaf1", leaf1, 1, 0))
	inner.AddSubtask(primitive("leaf2", leaf2, 1, 0))

	outer := domain.NewComposite("outer")
	outer.AddSubtask(inner)
	outer.AddSubtask(primitive("tail", tail, 1, 0))
	outer.SharedInputs = true

	res := runtime.NewEngine().Execute(context.Background(), outer, []any{"a", "b"}, nil)

	require.True(t, res.Success, res.Reason)
	// inner is partitioned even though outer shares.
	assert.Equal(t, [][]any{{"a"}}, leaf1.calls)
	assert.Equal(t, [][]any{{"b"}}, leaf2.calls)
	assert.Equal(t, [][]any{{"a", "b"}}, tail.calls)
}

func TestExecute_FirstFailureAborts(t *testing.T) {
	ok, bad, never := &recorder{payload: "done"}, &recorder{fail: "not manipulable"}, &recorder{}

	inner := domain.NewComposite("inner")
	inner.AddSubtask(primitive("bad", bad, 0, 0))

	c := domain.NewComposite("outer")
	c.AddSubtask(primitive("ok", ok, 0, 1))
	c.AddSubtask(inner)
	c.AddSubtask(primitive("never", never, 0, 0))

	res := runtime.NewEngine().Execute(context.Background(), c, nil, nil)

	assert.False(t, res.Success)
	assert.Equal(t, "not manipulable", res.Reason)
	assert.Equal(t, "bad", res.Action)
	assert.Nil(t, res.Payload)
	assert.Len(t, ok.calls, 1)
	assert.Empty(t, never.calls)
}

func TestExecute_PayloadAggregation(t *testing.T) {
	tests := []struct {
		name     string
		payloads []any
		want     any
	}{
		{"none", []any{nil, nil}, nil},
		{"single", []any{"cup", nil}, "cup"},
		{"many", []any{"cup", nil, "box"}, []any{"cup", "box"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.NewComposite("agg")
			for _, p := range tt.payloads {
				c.AddSubtask(primitive("p", &recorder{payload: p}, 0, 1))
			}
			res := runtime.NewEngine().Execute(context.Background(), c, nil, nil)
			require.True(t, res.Success)
			assert.Equal(t, tt.want, res.Payload)
		})
	}
}

func TestExecute_NoDeclaredOutputsYieldsEmptyPayload(t *testing.T) {
	c := domain.NewComposite("quiet")
	c.AddSubtask(primitive("p", &recorder{payload: "cup"}, 0, 0))

	res := runtime.NewEngine().Execute(context.Background(), c, nil, nil)
	require.True(t, res.Success)
	assert.Nil(t, res.Payload)
}

func TestExecute_InsufficientInputs(t *testing.T) {
	never := &recorder{}
	c := domain.NewComposite("short")
	c.AddSubtask(primitive("two", never, 2, 0))

	res := runtime.NewEngine().Execute(context.Background(), c, []any{"x"}, nil)

	assert.False(t, res.Success)
	assert.Equal(t, "insufficient inputs for two", res.Reason)
	assert.Empty(t, never.calls)
}

func TestExecute_Malformed(t *testing.T) {
	e := runtime.NewEngine()
	ctx := context.Background()

	assert.False(t, e.Execute(ctx, nil, nil, nil).Success)
	assert.False(t, e.Execute(ctx, domain.NewComposite("empty"), nil, nil).Success)
	assert.False(t, e.Execute(ctx, domain.NewPrimitive("bare", nil, nil, nil), nil, nil).Success)
}

func TestExecute_Hooks(t *testing.T) {
	var started, finished []string
	hooks := domain.LifecycleHooks{
		OnActionStart: func(_ context.Context, e *domain.ActionEvent) {
			started = append(started, e.Action)
		},
		OnActionFinish: func(_ context.Context, e *domain.ActionEvent) {
			finished = append(finished, e.Action)
			if e.Action == "bad" {
				assert.False(t, e.Success)
				assert.Equal(t, "boom", e.Reason)
				assert.Equal(t, 1, e.Depth)
			}
		},
	}

	c := domain.NewComposite("root")
	c.AddSubtask(primitive("good", &recorder{}, 0, 0))
	c.AddSubtask(primitive("bad", &recorder{fail: "boom"}, 0, 0))

	res := runtime.NewEngine(runtime.WithLifecycleHooks(hooks)).Execute(context.Background(), c, nil, nil)

	assert.False(t, res.Success)
	assert.Equal(t, []string{"root", "good", "bad"}, started)
	assert.Equal(t, []string{"good", "bad", "root"}, finished)
}
