// Package i18n holds the static localization catalogue for the two
// supported display languages, Indonesian (the default) and English.
package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Lang identifies a supported display language.
type Lang string

const (
	Indonesian Lang = "id"
	English    Lang = "en"
)

// ParseLang parses a language code ("id" or "en").
func ParseLang(s string) (Lang, error) {
	switch Lang(s) {
	case Indonesian, English:
		return Lang(s), nil
	default:
		return "", fmt.Errorf("unsupported language %q (want id or en)", s)
	}
}

// Tag returns the BCP 47 locale tag used for locale-aware number
// formatting.
func (l Lang) Tag() language.Tag {
	if l == English {
		return language.MustParse("en-US")
	}
	return language.MustParse("id-ID")
}

// Key identifies a message in the catalogue.
type Key string

const (
	UserDefault        Key = "user"
	JobTitleDefault    Key = "jobTitleDefault"
	InstitutionDefault Key = "institutionDefault"

	FormError  Key = "formError"
	TotalPrice Key = "totalPriceLabel"

	ShoppingList Key = "shoppingList"
	EmptyList    Key = "emptyListMessage"
	TableDate    Key = "tableDate"
	TableItem    Key = "tableItem"
	TableQty     Key = "tableQuantity"
	TablePrice   Key = "tableUnitPrice"
	TableTotal   Key = "tableTotal"
	GrandTotal   Key = "grandTotal"

	ReportTitle      Key = "reportTitle"
	LabelName        Key = "labelName"
	LabelJobTitle    Key = "labelJobTitle"
	LabelInstitution Key = "labelInstitution"
	LabelIDNumber    Key = "labelIdNumber"
	LabelAddress     Key = "labelAddress"

	EditProfile Key = "editProfileTitle"
)

type text struct{ id, en string }

var catalogue = map[Key]text{
	UserDefault:        {"Pengguna", "User"},
	JobTitleDefault:    {"Jabatan", "Position"},
	InstitutionDefault: {"Lembaga", "Institution"},

	FormError:  {"Harap isi semua kolom dengan benar.", "Please fill all fields correctly."},
	TotalPrice: {"Total Harga", "Total Price"},

	ShoppingList: {"Daftar Belanja", "Shopping List"},
	EmptyList:    {"Daftar belanja masih kosong.", "The shopping list is empty."},
	TableDate:    {"Tanggal", "Date"},
	TableItem:    {"Barang", "Item"},
	TableQty:     {"Jumlah", "Quantity"},
	TablePrice:   {"Harga Satuan", "Unit Price"},
	TableTotal:   {"Total", "Total"},
	GrandTotal:   {"Total Keseluruhan", "Grand Total"},

	ReportTitle:      {"Daftar Belanja", "Shopping List"},
	LabelName:        {"Nama", "Name"},
	LabelJobTitle:    {"Jabatan", "Position"},
	LabelInstitution: {"Lembaga", "Institution"},
	LabelIDNumber:    {"No ID", "ID Number"},
	LabelAddress:     {"Alamat", "Address"},

	EditProfile: {"Edit Profil", "Edit Profile"},
}

// T returns the message for key in the given language. An unknown key
// returns the key itself, so a missing entry is visible rather than
// fatal.
func T(k Key, l Lang) string {
	t, ok := catalogue[k]
	if !ok {
		return string(k)
	}
	if l == English {
		return t.en
	}
	return t.id
}

// months holds the abbreviated month names; x/text ships no date
// formatter, so the two supported languages are spelled out here.
var months = map[Lang][12]string{
	Indonesian: {"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"},
	English:    {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// MonthAbbrev returns the abbreviated month name for m in the given
// language.
func MonthAbbrev(m time.Month, l Lang) string {
	names, ok := months[l]
	if !ok {
		names = months[Indonesian]
	}
	return names[m-1]
}
