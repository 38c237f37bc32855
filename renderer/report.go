// Package renderer builds the shopping list views and the exportable
// report as markdown, and turns the report into the delivered document
// format.
package renderer

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prasetyo/belanja"
	"github.com/prasetyo/belanja/i18n"
)

// Context carries the display settings a view is rendered under.
type Context struct {
	Lang     i18n.Lang
	Currency string
}

func (c Context) t(k i18n.Key) string { return i18n.T(k, c.Lang) }

// Report builds the full markdown report: the profile photo when one is
// set and decodable, the title, the profile details block (non-empty
// fields only), and the item table with its grand-total footer.
//
// A photo that cannot be decoded is logged and omitted; the report is
// still produced.
func Report(items []belanja.Item, profile belanja.Profile, ctx Context) string {
	var b strings.Builder

	if data, ok := profile.Photo(); ok {
		img, err := photoImg(data)
		if err != nil {
			slog.Warn("skipping report photo", "err", err)
		} else {
			b.WriteString(img + "\n\n")
		}
	}

	fmt.Fprintf(&b, "# %s\n\n", ctx.t(i18n.ReportTitle))

	details := []struct {
		label i18n.Key
		value string
	}{
		{i18n.LabelName, profile.Name},
		{i18n.LabelJobTitle, profile.JobTitle},
		{i18n.LabelInstitution, profile.InstitutionName},
		{i18n.LabelIDNumber, profile.IDNumber},
		{i18n.LabelAddress, profile.Address},
	}
	wrote := false
	for _, d := range details {
		// Fields left empty are omitted entirely, not rendered blank.
		if strings.TrimSpace(d.value) == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s  \n", ctx.t(d.label), d.value)
		wrote = true
	}
	if wrote {
		b.WriteString("\n")
	}

	itemTable(&b, items, ctx, tableOptions{footer: true})
	return b.String()
}

// ListView renders the interactive list view: title, the item table (or
// the localized empty message) and the grand total line. Item ids are
// included so entries can be deleted by id.
func ListView(items []belanja.Item, total belanja.Amount, ctx Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", ctx.t(i18n.ShoppingList))
	if len(items) == 0 {
		b.WriteString(ctx.t(i18n.EmptyList) + "\n")
		return b.String()
	}
	itemTable(&b, items, ctx, tableOptions{ids: true})
	fmt.Fprintf(&b, "\n**%s**: %s\n", ctx.t(i18n.GrandTotal),
		belanja.FormatCurrency(total, ctx.Currency, ctx.Lang))
	return b.String()
}

type tableOptions struct {
	footer bool // append the grand-total footer row
	ids    bool // append an id column
}

// itemTable writes the item table, one row per item in collection
// order: date, name, "quantity unit", unit price, line total.
func itemTable(b *strings.Builder, items []belanja.Item, ctx Context, opts tableOptions) {
	fmt.Fprintf(b, "| %s | %s | %s | %s | %s |", ctx.t(i18n.TableDate), ctx.t(i18n.TableItem),
		ctx.t(i18n.TableQty), ctx.t(i18n.TablePrice), ctx.t(i18n.TableTotal))
	if opts.ids {
		b.WriteString(" ID |")
	}
	b.WriteString("\n|:---|:---|:---|---:|---:|")
	if opts.ids {
		b.WriteString(":---|")
	}
	b.WriteString("\n")

	var grand belanja.Amount
	for _, it := range items {
		fmt.Fprintf(b, "| %s | %s | %s %s | %s | %s |",
			belanja.FormatDate(it.Date, ctx.Lang),
			cell(it.Name),
			it.Quantity, it.Unit,
			belanja.FormatCurrency(it.Price, ctx.Currency, ctx.Lang),
			belanja.FormatCurrency(it.Total, ctx.Currency, ctx.Lang))
		if opts.ids {
			fmt.Fprintf(b, " %s |", it.ID)
		}
		b.WriteString("\n")
		grand = grand.Add(it.Total)
	}

	if opts.footer {
		fmt.Fprintf(b, "| | | | **%s** | **%s** |\n", ctx.t(i18n.GrandTotal),
			belanja.FormatCurrency(grand, ctx.Currency, ctx.Lang))
	}
}

// cell escapes the table cell separator in user text.
func cell(s string) string { return strings.ReplaceAll(s, "|", "\\|") }

// photoImg validates an image data URI and returns the raw img tag
// embedding it. The payload is checked to be well-formed base64 under
// an image media type; the pixels themselves are never decoded.
func photoImg(dataURI string) (string, error) {
	rest, ok := strings.CutPrefix(dataURI, "data:image/")
	if !ok {
		return "", fmt.Errorf("photo is not an image data URI")
	}
	_, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", fmt.Errorf("photo data URI is not base64 encoded")
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return "", fmt.Errorf("photo payload is corrupt: %w", err)
	}
	return fmt.Sprintf("<img src=%q alt=\"\" width=\"96\" align=\"right\">", dataURI), nil
}
