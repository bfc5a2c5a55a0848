package seqs_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"lazily/cursors"
	"lazily/lists"
	"lazily/seqs"
	"lazily/tuples"
)

func TestZip2(t *testing.T) {
	testCases := []struct {
		name     string
		letters  []string
		numbers  []int
		expected []tuples.Pair[string, int]
	}{
		{
			name:     "same length",
			letters:  []string{"A", "B", "C"},
			numbers:  []int{1, 2, 3},
			expected: []tuples.Pair[string, int]{{First: "A", Second: 1}, {First: "B", Second: 2}, {First: "C", Second: 3}},
		},
		{
			name:     "longer first",
			letters:  []string{"A", "B", "C", "D"},
			numbers:  []int{1, 2, 3},
			expected: []tuples.Pair[string, int]{{First: "A", Second: 1}, {First: "B", Second: 2}, {First: "C", Second: 3}},
		},
		{
			name:     "shorter first",
			letters:  []string{"A", "B", "C"},
			numbers:  []int{1, 2, 3, 4},
			expected: []tuples.Pair[string, int]{{First: "A", Second: 1}, {First: "B", Second: 2}, {First: "C", Second: 3}},
		},
		{
			name:    "empty first",
			numbers: []int{1, 2, 3},
		},
		{
			name:    "empty second",
			letters: []string{"A"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			zipped, err := seqs.Zip2(seqs.Of(tc.letters...), seqs.Of(tc.numbers...))
			require.NoError(t, err)

			got := collect(t, zipped)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Zip2 mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestZip2_IsPositional(t *testing.T) {
	zipped := seqs.Must(seqs.Zip2(seqs.Of(1, 1, 2), seqs.Of(2, 1, 1)))
	require.Equal(t, []tuples.Pair[int, int]{{First: 1, Second: 2}, {First: 1, Second: 1}, {First: 2, Second: 1}}, collect(t, zipped))
}

func TestZip2_DistinctCursors(t *testing.T) {
	zipped := seqs.Must(seqs.Zip2(seqs.Of("A", "B", "C"), seqs.Of(1, 2, 3)))

	first := zipped.Cursor()
	second := zipped.Cursor()

	require.Equal(t, tuples.Of2("A", 1), next(t, second))
	require.Equal(t, tuples.Of2("B", 2), next(t, second))
	require.Equal(t, tuples.Of2("A", 1), next(t, first))
	require.Equal(t, tuples.Of2("C", 3), next(t, second))
	require.Equal(t, tuples.Of2("B", 2), next(t, first))

	requireExhausted(t, second)
	require.Equal(t, tuples.Of2("C", 3), next(t, first))
	requireExhausted(t, first)
}

func TestZip3(t *testing.T) {
	zipped, err := seqs.Zip3(
		seqs.Of("A", "B", "C", "D"),
		seqs.Of(1, 2, 3),
		seqs.Of(true, false),
	)
	require.NoError(t, err)

	require.Equal(t, []tuples.Triple[string, int, bool]{
		{First: "A", Second: 1, Third: true},
		{First: "B", Second: 2, Third: false},
	}, collect(t, zipped))
}

func TestZip3_DistinctCursors(t *testing.T) {
	zipped := seqs.Must(seqs.Zip3(seqs.Of("A", "B", "C"), seqs.Of(1, 2, 3), seqs.Of(true, false, true)))

	first := zipped.Cursor()
	second := zipped.Cursor()

	require.Equal(t, tuples.Of3("A", 1, true), next(t, second))
	require.Equal(t, tuples.Of3("B", 2, false), next(t, second))
	require.Equal(t, tuples.Of3("A", 1, true), next(t, first))
	require.Equal(t, tuples.Of3("C", 3, true), next(t, second))
	require.Equal(t, tuples.Of3("B", 2, false), next(t, first))
}

func TestZip4(t *testing.T) {
	zipped, err := seqs.Zip4(
		seqs.Of("A", "B", "C", "D"),
		seqs.Of(1, 2, 3),
		seqs.Of(true, false),
		seqs.Of('a', 'b', 'c', 'd', 'e', 'f'),
	)
	require.NoError(t, err)

	require.Equal(t, []tuples.Quadruple[string, int, bool, rune]{
		{First: "A", Second: 1, Third: true, Fourth: 'a'},
		{First: "B", Second: 2, Third: false, Fourth: 'b'},
	}, collect(t, zipped))

	full := seqs.Must(seqs.Zip4(seqs.Of("A", "B", "C"), seqs.Of(1, 2, 3), seqs.Of(true, false, true), seqs.Of('a', 'b', 'c')))
	first := full.Cursor()
	second := full.Cursor()

	require.Equal(t, tuples.Of4("A", 1, true, 'a'), next(t, second))
	require.Equal(t, tuples.Of4("B", 2, false, 'b'), next(t, second))
	require.Equal(t, tuples.Of4("A", 1, true, 'a'), next(t, first))
	require.Equal(t, tuples.Of4("C", 3, true, 'c'), next(t, second))
	require.Equal(t, tuples.Of4("B", 2, false, 'b'), next(t, first))
}

func TestZip5(t *testing.T) {
	zipped, err := seqs.Zip5(
		seqs.Of("A", "B", "C"),
		seqs.Of(1, 2, 3),
		seqs.Of(true, false, true),
		seqs.Of('a', 'b', 'c'),
		seqs.Of(1.2, 3.4, 5.6),
	)
	require.NoError(t, err)

	require.Equal(t, []tuples.Quintuple[string, int, bool, rune, float64]{
		{First: "A", Second: 1, Third: true, Fourth: 'a', Fifth: 1.2},
		{First: "B", Second: 2, Third: false, Fourth: 'b', Fifth: 3.4},
		{First: "C", Second: 3, Third: true, Fourth: 'c', Fifth: 5.6},
	}, collect(t, zipped))

	short := seqs.Must(seqs.Zip5(
		seqs.Of("A", "B", "C"),
		seqs.Of(1, 2, 3),
		seqs.Of(true, false, true),
		seqs.Of('a', 'b', 'c'),
		seqs.Of(1.2),
	))
	require.Len(t, collect(t, short), 1)
}

func TestZip6_InterleavedCursors(t *testing.T) {
	zipped, err := seqs.Zip6(
		seqs.Of("A", "B", "C"),
		seqs.Of(1, 2, 3),
		seqs.Of(true, false, true),
		seqs.Of('a', 'b', 'c'),
		seqs.Of(1.2, 3.4, 5.6),
		seqs.Of(int64(10), int64(20), int64(30)),
	)
	require.NoError(t, err)

	want := []tuples.Sextuple[string, int, bool, rune, float64, int64]{
		{First: "A", Second: 1, Third: true, Fourth: 'a', Fifth: 1.2, Sixth: 10},
		{First: "B", Second: 2, Third: false, Fourth: 'b', Fifth: 3.4, Sixth: 20},
		{First: "C", Second: 3, Third: true, Fourth: 'c', Fifth: 5.6, Sixth: 30},
	}

	first := zipped.Cursor()
	second := zipped.Cursor()

	require.Equal(t, want[0], next(t, second))
	require.Equal(t, want[1], next(t, second))
	require.Equal(t, want[0], next(t, first))
	require.Equal(t, want[2], next(t, second))
	require.Equal(t, want[1], next(t, first))
	require.Equal(t, want[2], next(t, first))

	requireExhausted(t, first)
	requireExhausted(t, second)
}

func TestZip6_ShortestWins(t *testing.T) {
	zipped := seqs.Must(seqs.Zip6(
		seqs.Of(1, 2, 3),
		seqs.Of(1, 2, 3),
		seqs.Of(1, 2, 3),
		seqs.Of(1, 2, 3),
		seqs.Of(1, 2, 3),
		seqs.Of[int](),
	))
	c := zipped.Cursor()
	requireExhausted(t, c)
}

func TestZip_RejectsNilUpstream(t *testing.T) {
	var nilList *lists.ArrayList[int]
	var nilFunc seqs.Func[int]

	testCases := []struct {
		name     string
		build    func() error
		position string
	}{
		{"zip2 first", func() error { _, err := seqs.Zip2[int, int](nil, seqs.Of(1)); return err }, "zip2: upstream 1"},
		{"zip2 typed nil", func() error { _, err := seqs.Zip2[int, int](seqs.Of(1), nilList); return err }, "zip2: upstream 2"},
		{"zip3 nil func", func() error {
			_, err := seqs.Zip3[int, int, int](seqs.Of(1), seqs.Of(1), nilFunc)
			return err
		}, "zip3: upstream 3"},
		{"zip4", func() error {
			_, err := seqs.Zip4[int, int, int, int](seqs.Of(1), nil, seqs.Of(1), seqs.Of(1))
			return err
		}, "zip4: upstream 2"},
		{"zip5", func() error {
			_, err := seqs.Zip5[int, int, int, int, int](seqs.Of(1), seqs.Of(1), seqs.Of(1), seqs.Of(1), nil)
			return err
		}, "zip5: upstream 5"},
		{"zip6", func() error {
			_, err := seqs.Zip6[int, int, int, int, int, int](seqs.Of(1), seqs.Of(1), seqs.Of(1), nil, seqs.Of(1), seqs.Of(1))
			return err
		}, "zip6: upstream 4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build()
			require.ErrorIs(t, err, seqs.ErrNilUpstream)
			require.ErrorContains(t, err, tc.position)
		})
	}
}

func TestZip_PullsLeftToRight(t *testing.T) {
	var log []string
	zipped := seqs.Must(seqs.Zip3[string, int, bool](
		&tracked[string]{name: "a", values: []string{"A", "B"}, log: &log},
		&tracked[int]{name: "b", values: []int{1, 2}, log: &log},
		&tracked[bool]{name: "c", values: []bool{true, false}, log: &log},
	))

	c := zipped.Cursor()
	require.Empty(t, log, "opening a cursor must not pull")

	next(t, c)
	require.Equal(t, []string{"a0", "b0", "c0"}, log)

	next(t, c)
	require.Equal(t, []string{"a0", "b0", "c0", "a1", "b1", "c1"}, log)
}

func TestZip_UpstreamFailureStopsStep(t *testing.T) {
	boom := errors.New("boom")
	var log []string
	zipped := seqs.Must(seqs.Zip3[string, int, bool](
		&tracked[string]{name: "a", values: []string{"A", "B"}, log: &log},
		&tracked[int]{name: "b", values: []int{1, 2}, log: &log, failAt: 1, err: boom},
		&tracked[bool]{name: "c", values: []bool{true, false}, log: &log},
	))

	c := zipped.Cursor()
	next(t, c)

	_, err := c.Next()
	require.Same(t, boom, err, "upstream failures propagate unmodified")
	require.Equal(t, []string{"a0", "b0", "c0", "a1"}, log)
}

func TestZip_ExhaustionIsSticky(t *testing.T) {
	zipped := seqs.Must(seqs.Zip2[int, int](flickering{}, seqs.Of(1, 2, 3)))
	c := zipped.Cursor()

	require.True(t, c.HasNext())
	requireExhausted(t, c)
}

func TestZip_RemoveUnsupported(t *testing.T) {
	list := lists.NewArrayList[int](0)
	list.Add(1, 2)
	zipped := seqs.Must(seqs.Zip2[int, int](list, list))

	c := zipped.Cursor()
	next(t, c)
	require.ErrorIs(t, c.Remove(), cursors.ErrRemoveUnsupported)
	require.Equal(t, 2, list.Size())
}

func TestZip_NestedComposition(t *testing.T) {
	inner := seqs.Must(seqs.Zip2(seqs.Of("A", "B", "C"), seqs.Of(1, 2, 3)))
	outer := seqs.Must(seqs.Zip2(seqs.Must(seqs.Enumerate(inner)), inner))

	got := collect(t, outer)
	require.Len(t, got, 3)
	require.Equal(t, tuples.Of2(tuples.Of2(1, tuples.Of2("B", 2)), tuples.Of2("B", 2)), got[1])
}

func TestZip_SameDefinitionTwice(t *testing.T) {
	letters := seqs.Of("A", "B", "C")
	zipped := seqs.Must(seqs.Zip2(letters, letters))

	require.Equal(t, []tuples.Pair[string, string]{{First: "A", Second: "A"}, {First: "B", Second: "B"}, {First: "C", Second: "C"}}, collect(t, zipped))
}

func TestZip_ReTraversal(t *testing.T) {
	zipped := seqs.Must(seqs.Zip2(seqs.FromSeq(slices.Values([]string{"A", "B"})), seqs.Of(1, 2, 3)))

	first := collect(t, zipped)
	second := collect(t, zipped)
	require.Equal(t, first, second)
	require.Len(t, first, 2)
}

func TestZip_CloseReleasesPullCursors(t *testing.T) {
	zipped := seqs.Must(seqs.Zip2(
		seqs.FromSeq(slices.Values([]int{1, 2, 3})),
		seqs.FromSeq(slices.Values([]int{4, 5, 6})),
	))

	c := zipped.Cursor()
	require.Equal(t, tuples.Of2(1, 4), next(t, c))
	require.NoError(t, cursors.Close(c))
	requireExhausted(t, c)
}
