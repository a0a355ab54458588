package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionsCanonicalKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sel  Selections
		want string
	}{
		{
			name: "nil selections",
			sel:  nil,
			want: "",
		},
		{
			name: "empty selections",
			sel:  Selections{},
			want: "",
		},
		{
			name: "single choice",
			sel:  Selections{"size": {"large"}},
			want: "size=large",
		},
		{
			name: "keys are sorted",
			sel:  Selections{"toppings": {"olives"}, "size": {"large"}},
			want: "size=large;toppings=olives",
		},
		{
			name: "multi choice values are sorted",
			sel:  Selections{"toppings": {"olives", "mushrooms"}},
			want: "toppings=mushrooms,olives",
		},
		{
			name: "free text is trimmed",
			sel:  Selections{"note": {"  no onions "}},
			want: "note=no onions",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.sel.CanonicalKey())
		})
	}
}

func TestCanonicalKeyOrderInsensitive(t *testing.T) {
	t.Parallel()

	a := Selections{"size": {"large"}, "toppings": {"olives", "mushrooms"}}
	b := Selections{"toppings": {"mushrooms", "olives"}, "size": {"large"}}
	assert.Equal(t, a.CanonicalKey(), b.CanonicalKey())

	c := Selections{"size": {"regular"}, "toppings": {"olives", "mushrooms"}}
	assert.NotEqual(t, a.CanonicalKey(), c.CanonicalKey())
}

func TestCanonicalKeyEscapesDelimiters(t *testing.T) {
	t.Parallel()

	// Free text carrying the join delimiters must not canonicalize to
	// the same key as a structurally different selection set.
	a := Selections{"note": {"x;size=large"}}
	b := Selections{"note": {"x"}, "size": {"large"}}
	assert.NotEqual(t, a.CanonicalKey(), b.CanonicalKey())

	c := Selections{"toppings": {"olives,mushrooms"}}
	d := Selections{"toppings": {"olives", "mushrooms"}}
	assert.NotEqual(t, c.CanonicalKey(), d.CanonicalKey())

	// Escaping stays deterministic for equal inputs.
	assert.Equal(t, a.CanonicalKey(), a.Clone().CanonicalKey())
	assert.Equal(t, `note=x\;size\=large`, a.CanonicalKey())
}

func TestCartItemIdentityKey(t *testing.T) {
	t.Parallel()

	a := CartItem{
		MenuItem:   MenuItem{ID: "item-1"},
		Selections: Selections{"toppings": {"olives", "mushrooms"}},
	}
	b := CartItem{
		MenuItem:   MenuItem{ID: "item-1"},
		Selections: Selections{"toppings": {"mushrooms", "olives"}},
	}
	assert.Equal(t, a.IdentityKey(), b.IdentityKey())

	// Same selections on a different item never merge.
	c := CartItem{
		MenuItem:   MenuItem{ID: "item-2"},
		Selections: a.Selections,
	}
	assert.NotEqual(t, a.IdentityKey(), c.IdentityKey())
}

func TestSelectionsClone(t *testing.T) {
	t.Parallel()

	orig := Selections{"toppings": {"olives"}}
	cp := orig.Clone()
	cp["toppings"][0] = "mushrooms"
	cp["size"] = []string{"large"}

	assert.Equal(t, Selections{"toppings": {"olives"}}, orig)
	assert.Nil(t, Selections(nil).Clone())
}

func TestSelectionsScan(t *testing.T) {
	t.Parallel()

	var s Selections
	require.NoError(t, s.Scan(`{"size":["large"]}`))
	assert.Equal(t, Selections{"size": {"large"}}, s)

	var empty Selections
	require.NoError(t, empty.Scan(nil))
	assert.Nil(t, empty)

	var typed Selections
	assert.Error(t, typed.Scan(42))
}
