package messagepattern_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
)

func TestPart_String(t *testing.T) {
	t.Parallel()

	mp := messagepattern.MustParse("{0,plural,other{#}}")
	assert.Equal(t, "MessageStart(0)@0", mp.Part(0).String())
	assert.Equal(t, "ArgStart(Plural)@0", mp.Part(1).String())
	assert.Equal(t, "ArgNumber(0)@1", mp.Part(2).String())
	assert.Equal(t, "ReplaceNumber(0)@16", mp.Part(5).String())
	assert.Equal(t, "PartKind(200)", messagepattern.PartKind(200).String())
	assert.Equal(t, "ArgKind(9)", messagepattern.ArgKind(9).String())
}

func TestPart_ArgTypeOnlyForArgParts(t *testing.T) {
	t.Parallel()

	mp := messagepattern.MustParse("{0,select,other{x}}")
	for i := range mp.CountParts() {
		p := mp.Part(i)
		switch p.Kind() {
		case messagepattern.ArgStart, messagepattern.ArgLimit:
			assert.Equal(t, messagepattern.ArgTypeSelect, p.ArgType())
		default:
			assert.Equal(t, messagepattern.ArgTypeNone, p.ArgType(), "part %s", p)
		}
	}
}

func TestPart_Equal(t *testing.T) {
	t.Parallel()

	a := messagepattern.MustParse("{0} {0}")
	assert.True(t, a.Part(2).Equal(a.Part(2)))
	assert.False(t, a.Part(2).Equal(a.Part(5)), "same value, different index")
	assert.Equal(t, a.Part(2).Limit(), a.Part(2).Index()+a.Part(2).Length())
}

func TestArgKind_HasPluralStyle(t *testing.T) {
	t.Parallel()

	assert.True(t, messagepattern.ArgTypePlural.HasPluralStyle())
	assert.True(t, messagepattern.ArgTypeSelectOrdinal.HasPluralStyle())
	assert.False(t, messagepattern.ArgTypeSelect.HasPluralStyle())
	assert.False(t, messagepattern.ArgTypeChoice.HasPluralStyle())
}

func TestParseApostropheMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    messagepattern.ApostropheMode
		wantErr bool
	}{
		{"", messagepattern.DoubleOptional, false},
		{"DOUBLE_OPTIONAL", messagepattern.DoubleOptional, false},
		{"double-required", messagepattern.DoubleRequired, false},
		{" Double_Required ", messagepattern.DoubleRequired, false},
		{"single", messagepattern.DoubleOptional, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := messagepattern.ParseApostropheMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	var m messagepattern.ApostropheMode
	require.NoError(t, m.UnmarshalText([]byte("double_required")))
	assert.Equal(t, messagepattern.DoubleRequired, m)
	assert.Equal(t, "DOUBLE_REQUIRED", m.String())

	_, err := messagepattern.ApostropheMode(7).MarshalText()
	require.Error(t, err)
}

func TestMessagePattern_JSON(t *testing.T) {
	t.Parallel()

	t.Run("keeps parts and numbers", func(t *testing.T) {
		t.Parallel()
		src := messagepattern.New(messagepattern.WithApostropheMode(messagepattern.DoubleRequired))
		require.NoError(t, src.ParseChoiceStyle("-∞#low|0.25<mid|40000≤high 'x"))

		data, err := json.Marshal(src)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"mode":"DOUBLE_REQUIRED"`)

		dst := messagepattern.New()
		require.NoError(t, json.Unmarshal(data, dst))

		assert.True(t, src.Equal(dst))
		assert.Equal(t, src.NeedsAutoQuoting(), dst.NeedsAutoQuoting())
		assert.Equal(t, src.AutoQuoteApostropheDeep(), dst.AutoQuoteApostropheDeep())
		assert.True(t, math.IsInf(dst.NumericValue(dst.Part(0)), -1))
		assert.Equal(t, 40000.0, dst.NumericValue(dst.Part(8)))
	})

	t.Run("rejects corrupt parts", func(t *testing.T) {
		t.Parallel()
		tests := map[string]string{
			"unknown kind":     `{"pattern":"{0}","mode":"DOUBLE_OPTIONAL","parts":[[99,0,0,0,-1]]}`,
			"span outside":     `{"pattern":"{0}","mode":"DOUBLE_OPTIONAL","parts":[[0,0,9,0,-1]]}`,
			"missing limit":    `{"pattern":"{0}","mode":"DOUBLE_OPTIONAL","parts":[[0,0,0,0,-1]]}`,
			"bad double index": `{"pattern":"1.5","mode":"DOUBLE_OPTIONAL","parts":[[13,0,3,0,-1]]}`,
			"bad number":       `{"pattern":"1","mode":"DOUBLE_OPTIONAL","parts":[[13,0,1,0,-1]],"numbers":["x"]}`,
		}
		for name, data := range tests {
			mp := messagepattern.New()
			err := json.Unmarshal([]byte(data), mp)
			assert.ErrorIs(t, err, messagepattern.ErrSyntax, name)
		}
	})

	t.Run("frozen receiver", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(messagepattern.MustParse("{0}"))
		require.NoError(t, err)

		frozen := messagepattern.New().Freeze()
		require.ErrorIs(t, frozen.UnmarshalJSON(data), messagepattern.ErrFrozen)
	})
}
