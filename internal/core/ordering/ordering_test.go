package ordering

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertAfter(t *testing.T) {
	tests := []struct {
		name    string
		order   []string
		id      string
		afterID string
		want    []string
	}{
		{name: "into empty", order: nil, id: "a", want: []string{"a"}},
		{name: "no anchor appends", order: []string{"a", "b"}, id: "c", want: []string{"a", "b", "c"}},
		{name: "after first", order: []string{"a", "b"}, id: "c", afterID: "a", want: []string{"a", "c", "b"}},
		{name: "after last", order: []string{"a", "b"}, id: "c", afterID: "b", want: []string{"a", "b", "c"}},
		{name: "unknown anchor appends", order: []string{"a", "b"}, id: "c", afterID: "zzz", want: []string{"a", "b", "c"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, InsertAfter(tc.order, tc.id, tc.afterID))
		})
	}
}

func TestInsertAfter_DoesNotMutateInput(t *testing.T) {
	order := make([]string, 2, 8)
	order[0], order[1] = "a", "b"

	_ = InsertAfter(order, "c", "a")

	require.Equal(t, []string{"a", "b"}, order)
	require.Empty(t, order[:3][2])
}

func TestRemove(t *testing.T) {
	require.Equal(t, []string{"a", "c"}, Remove([]string{"a", "b", "c", "b"}, "b"))
	require.Equal(t, []string{"a"}, Remove([]string{"a"}, "missing"))
	require.Empty(t, Remove(nil, "a"))
}

type section struct {
	ID   string
	Name string
}

func TestApply(t *testing.T) {
	items := []section{
		{ID: "s1", Name: "Bathroom"},
		{ID: "s2", Name: "Fridge"},
		{ID: "s3", Name: "Pantry"},
		{ID: "s4", Name: "Zeta"},
	}
	order := []string{"s3", "gone", "s1", "s2"}

	got := Apply(order, items, func(s section) string { return s.ID })

	require.Equal(t, []section{
		{ID: "s3", Name: "Pantry"},
		{ID: "s1", Name: "Bathroom"},
		{ID: "s2", Name: "Fridge"},
		{ID: "s4", Name: "Zeta"},
	}, got)
}

func TestApply_DuplicateIDsInOrder(t *testing.T) {
	items := []section{{ID: "a"}, {ID: "b"}}

	got := Apply([]string{"b", "b", "a"}, items, func(s section) string { return s.ID })

	require.Equal(t, []section{{ID: "b"}, {ID: "a"}}, got)
}

func TestApply_DuplicateItemIDsKeepFirstInPlace(t *testing.T) {
	items := []section{
		{ID: "x", Name: "first"},
		{ID: "y", Name: "other"},
		{ID: "x", Name: "second"},
	}

	got := Apply([]string{"x", "y"}, items, func(s section) string { return s.ID })

	require.Equal(t, []section{
		{ID: "x", Name: "first"},
		{ID: "y", Name: "other"},
		{ID: "x", Name: "second"},
	}, got)
}
