package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/0401lucky/daybook/pkg/glyph"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	k.Key(ctx, glyph.DefaultGlyphs(), glyph.GroupBullets)
	k.Key(ctx, glyph.DefaultGlyphs(), glyph.GroupPriorities)
	k.Key(ctx, glyph.DefaultGlyphs(), glyph.GroupMoods)

	return nil
}

func (k *Key) Key(ctx context.Context, glyfs []glyph.Glyph, group glyph.Group) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Key"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, v := range glyfs {
		if group == v.Group {
			tbl.AddRow(v.Key, v.Symbol, v.Meaning)
		}
	}

	switch group {
	case glyph.GroupPriorities:
		_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nPriorities")))
	case glyph.GroupMoods:
		_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nMoods")))
	default:
		_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nBullets")))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
