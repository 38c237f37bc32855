package renderer

import (
	"strings"
	"testing"

	"github.com/prasetyo/belanja"
	"github.com/prasetyo/belanja/date"
	"github.com/prasetyo/belanja/i18n"
)

var idCtx = Context{Lang: i18n.Indonesian, Currency: "IDR"}

func sampleItems() []belanja.Item {
	return []belanja.Item{
		{
			ID: "a", Name: "Beras", Quantity: belanja.Q(2), Unit: belanja.Kilogram,
			Price: belanja.A(15000), Total: belanja.A(30000), Date: date.MustParse("2024-01-10"),
		},
		{
			ID: "b", Name: "Telur", Quantity: belanja.Q(5), Unit: belanja.Piece,
			Price: belanja.A(2500), Total: belanja.A(12500), Date: date.MustParse("2024-01-11"),
		},
	}
}

func TestReport(t *testing.T) {
	p := belanja.DefaultProfile(i18n.Indonesian)
	p.Name = "Budi"
	p.IDNumber = "12345"
	p.Address = "" // must be omitted, not rendered blank

	got := Report(sampleItems(), p, idCtx)

	for _, want := range []string{
		"# Daftar Belanja",
		"Nama: Budi",
		"No ID: 12345",
		"| Tanggal | Barang | Jumlah | Harga Satuan | Total |",
		"| 10 Jan 2024 | Beras | 2 kg | Rp15.000,00 | Rp30.000,00 |",
		"**Total Keseluruhan** | **Rp42.500,00**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Alamat") {
		t.Errorf("empty address field rendered:\n%s", got)
	}
}

func TestReport_English(t *testing.T) {
	got := Report(sampleItems(), belanja.DefaultProfile(i18n.English),
		Context{Lang: i18n.English, Currency: "USD"})
	for _, want := range []string{
		"# Shopping List",
		"Name: User",
		"| Date | Item | Quantity | Unit Price | Total |",
		"| Jan 10, 2024 | Beras | 2 kg | $15,000.00 | $30,000.00 |",
		"**Grand Total** | **$42,500.00**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestReport_Photo(t *testing.T) {
	p := belanja.DefaultProfile(i18n.Indonesian)
	p.SetPhoto("data:image/png;base64,ZmFrZQ==")
	if got := Report(nil, p, idCtx); !strings.Contains(got, "<img src=") {
		t.Errorf("valid photo not embedded:\n%s", got)
	}

	// A corrupt photo is dropped but the report is still produced.
	p.SetPhoto("data:image/png;base64,!!!not base64!!!")
	got := Report(nil, p, idCtx)
	if strings.Contains(got, "<img") {
		t.Errorf("corrupt photo embedded anyway:\n%s", got)
	}
	if !strings.Contains(got, "# Daftar Belanja") {
		t.Errorf("report without title:\n%s", got)
	}

	p.SetPhoto("not a data uri at all")
	if got := Report(nil, p, idCtx); strings.Contains(got, "<img") {
		t.Errorf("malformed photo embedded anyway:\n%s", got)
	}
}

func TestReport_EscapesTableCells(t *testing.T) {
	items := []belanja.Item{{
		ID: "a", Name: "Keju | Mozarella", Quantity: belanja.Q(1), Unit: belanja.Pack,
		Price: belanja.A(50000), Total: belanja.A(50000), Date: date.MustParse("2024-01-10"),
	}}
	if got := Report(items, belanja.Profile{}, idCtx); !strings.Contains(got, `Keju \| Mozarella`) {
		t.Errorf("pipe in item name not escaped:\n%s", got)
	}
}

func TestListView(t *testing.T) {
	got := ListView(sampleItems(), belanja.A(42500), idCtx)
	for _, want := range []string{
		"# Daftar Belanja",
		" ID |",
		"| a |",
		"**Total Keseluruhan**: Rp42.500,00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("list view missing %q:\n%s", want, got)
		}
	}
}

func TestListView_Empty(t *testing.T) {
	got := ListView(nil, belanja.Amount{}, idCtx)
	if !strings.Contains(got, "Daftar belanja masih kosong.") {
		t.Errorf("empty list message missing:\n%s", got)
	}
	if strings.Contains(got, "|") {
		t.Errorf("empty list view still renders a table:\n%s", got)
	}
}

func TestHTMLDocument(t *testing.T) {
	md := Report(sampleItems(), belanja.DefaultProfile(i18n.Indonesian), idCtx)
	doc, err := HTMLDocument(md, "Daftar Belanja", false)
	if err != nil {
		t.Fatalf("HTMLDocument: %v", err)
	}
	html := string(doc)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Daftar Belanja</title>",
		"<table>",
		"Rp42.500,00",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestHTMLDocument_Themes(t *testing.T) {
	light, err := HTMLDocument("# t", "t", false)
	if err != nil {
		t.Fatal(err)
	}
	dark, err := HTMLDocument("# t", "t", true)
	if err != nil {
		t.Fatal(err)
	}
	if string(light) == string(dark) {
		t.Error("light and dark documents are identical")
	}
	if !strings.Contains(string(dark), "#0f172a") {
		t.Error("dark document misses the dark background")
	}
}
