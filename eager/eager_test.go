package eager_test

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"lazily/cursors"
	"lazily/eager"
	"lazily/seqs"
	"lazily/tuples"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errBoom = errors.New("boom")

// failing yields 1 then fails on every later pull.
type failing struct{}

func (failing) Cursor() cursors.Cursor[int] { return &failingCursor{} }

type failingCursor struct {
	cursors.ReadOnly
	pulled bool
}

func (c *failingCursor) HasNext() bool { return true }

func (c *failingCursor) Next() (int, error) {
	if c.pulled {
		return 0, errBoom
	}
	c.pulled = true
	return 1, nil
}

func TestMaterialize(t *testing.T) {
	zipped := seqs.Must(seqs.Zip2(seqs.Of("A", "B", "C"), seqs.Of(1, 2, 3)))

	got, err := eager.Materialize(zipped)
	require.NoError(t, err)
	require.Equal(t, []tuples.Pair[string, int]{{First: "A", Second: 1}, {First: "B", Second: 2}, {First: "C", Second: 3}}, got)

	got2, err := eager.Materialize(zipped)
	require.NoError(t, err)
	require.Equal(t, got, got2)

	_, err = eager.Materialize[int](failing{})
	require.ErrorIs(t, err, errBoom)
}

func TestFirstLast(t *testing.T) {
	s := seqs.FromSeq(slices.Values([]int{3, 4, 5}))

	v, ok, err := eager.First(s)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, v)

	v, ok, err = eager.Last(s)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, v)

	_, ok, err = eager.First(seqs.Of[int]())
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = eager.Last(seqs.Of[int]())
	require.NoError(t, err)
	require.False(t, ok)

	v, ok, err = eager.Last[int](failing{})
	require.ErrorIs(t, err, errBoom)
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestCount(t *testing.T) {
	n, err := eager.Count(seqs.Range(0, 10, 3))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	n, err = eager.Count[int](failing{})
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 1, n)
}

func TestAnyAll(t *testing.T) {
	s := seqs.Of(1, 2, 3)
	even := func(v int) bool { return v%2 == 0 }
	positive := func(v int) bool { return v > 0 }

	ok, err := eager.Any(s, even)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = eager.All(s, even)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = eager.All(s, positive)
	require.NoError(t, err)
	require.True(t, ok)

	// short-circuits before the failure
	ok, err = eager.Any[int](failing{}, positive)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = eager.All[int](failing{}, positive)
	require.ErrorIs(t, err, errBoom)
}

func TestReduce(t *testing.T) {
	sum, err := eager.Reduce(seqs.Range(1, 5, 1), 0, func(acc, v int) int { return acc + v })
	require.NoError(t, err)
	require.Equal(t, 10, sum)

	_, err = eager.Reduce[int](failing{}, 0, func(acc, v int) int { return acc + v })
	require.ErrorIs(t, err, errBoom)
}

func TestNilArguments(t *testing.T) {
	var nilSeq seqs.Sequence[int]
	keep := func(int) bool { return true }

	_, err := eager.Materialize(nilSeq)
	require.ErrorIs(t, err, seqs.ErrNilUpstream)
	_, _, err = eager.First(nilSeq)
	require.ErrorIs(t, err, seqs.ErrNilUpstream)
	_, _, err = eager.Last(nilSeq)
	require.ErrorIs(t, err, seqs.ErrNilUpstream)
	_, err = eager.Count(nilSeq)
	require.ErrorIs(t, err, seqs.ErrNilUpstream)
	_, err = eager.Any(nilSeq, keep)
	require.ErrorIs(t, err, seqs.ErrNilUpstream)

	_, err = eager.Any(seqs.Of(1), nil)
	require.ErrorIs(t, err, seqs.ErrNilFunction)
	_, err = eager.All(seqs.Of(1), nil)
	require.ErrorIs(t, err, seqs.ErrNilFunction)
	acc, err := eager.Reduce[int, int](seqs.Of(1), 7, nil)
	require.ErrorIs(t, err, seqs.ErrNilFunction)
	require.Equal(t, 7, acc)
}
