package ingest

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"greencart/internal"
	"greencart/internal/util"
)

const storeBaseURL = "https://www.ah.nl"

// ParseBonusPage extracts product tuples from a saved bonus/listing page.
// Product cards are anchored on the product detail links; title, price and
// image are read from within each card.
func ParseBonusPage(r io.Reader, source string) ([]internal.ScrapedItem, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	out := []internal.ScrapedItem{}
	doc.Find(`a[href^="/producten/product/"]`).Each(func(_ int, link *goquery.Selection) {
		card := link
		if card.Find(`[data-testhook="product-title"]`).Length() == 0 {
			card = link.Parent()
		}

		name := strings.TrimSpace(card.Find(`[data-testhook="product-title"]`).First().Text())
		if name == "" {
			return
		}

		item := internal.ScrapedItem{
			Name:   name,
			Source: source,
			Price:  util.ParsePrice(card.Find(`[data-testhook="product-price"]`).First().Text()),
		}
		if href, ok := link.Attr("href"); ok {
			item.URL = storeBaseURL + href
		}
		if src, ok := card.Find("img").First().Attr("src"); ok {
			item.Image = src
		}
		out = append(out, item)
	})

	return out, nil
}
