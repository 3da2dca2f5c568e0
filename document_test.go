package moneyfmt

import "testing"

func TestHTMLDocumentQuerySelectorText(t *testing.T) {
	doc := loadDocument(t, "storefront.html")

	tests := []struct {
		selector string
		want     string
		ok       bool
	}{
		{AutoketingSelector, "GBP", true},
		{"span.selected", "GBP", true},
		{"p.price", "£10.00", true},
		{"#site-header", "GBP", true},
		{"main", "£10.00", true},
		{"title", "Storefront", true},
		{".missing", "", false},
		{"div span", "GBP", true},
		{"header div > span.selected", "GBP", true},
		{"main > p.price", "£10.00", true},
		{"body > p", "", false},
		{"span > b", "", false},
		{"span[", "", false},
		{"", "", false},
		{".", "", false},
	}

	for _, tc := range tests {
		got, ok := doc.QuerySelectorText(tc.selector)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("QuerySelectorText(%q) = %q,%v want %q,%v", tc.selector, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHTMLDocumentDescendantSelector(t *testing.T) {
	doc := selectorDocument(`<div id="switcher"><ul><li><span class="code">CHF</span></li></ul></div><span class="code">EUR</span>`)

	if got, ok := doc.QuerySelectorText("#switcher .code"); !ok || got != "CHF" {
		t.Fatalf("QuerySelectorText(#switcher .code) = %q,%v", got, ok)
	}
	if got, ok := doc.QuerySelectorText("body > span.code"); !ok || got != "EUR" {
		t.Fatalf("QuerySelectorText(body > span.code) = %q,%v", got, ok)
	}
}

func TestHTMLDocumentNil(t *testing.T) {
	var doc *HTMLDocument
	if _, ok := doc.QuerySelectorText("p"); ok {
		t.Fatal("expected nil document to match nothing")
	}
}

func TestHTMLDocumentMultipleClasses(t *testing.T) {
	doc := selectorDocument(`<div class="a"><span class="a b">first</span><span class="b">second</span></div>`)

	if got, ok := doc.QuerySelectorText(".b"); !ok || got != "first" {
		t.Fatalf("QuerySelectorText(.b) = %q,%v", got, ok)
	}
	if got, ok := doc.QuerySelectorText("span.b.a"); !ok || got != "first" {
		t.Fatalf("QuerySelectorText(span.b.a) = %q,%v", got, ok)
	}
	if _, ok := doc.QuerySelectorText("span.c"); ok {
		t.Fatal("expected no match for span.c")
	}
}

func TestStorage(t *testing.T) {
	storage := MapStorage{"k": "v"}
	if got, ok := storage.Item("k"); !ok || got != "v" {
		t.Fatalf("Item(k) = %q,%v", got, ok)
	}
	if _, ok := storage.Item("missing"); ok {
		t.Fatal("expected missing key")
	}

	var empty MapStorage
	if _, ok := empty.Item("k"); ok {
		t.Fatal("expected nil storage to be empty")
	}

	fn := StorageFunc(func(key string) (string, bool) { return key + "!", true })
	if got, _ := fn.Item("x"); got != "x!" {
		t.Fatalf("StorageFunc Item = %q", got)
	}
}
