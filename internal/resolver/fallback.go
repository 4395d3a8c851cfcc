package resolver

import (
	"strconv"
	"strings"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
)

// Fallback resolves orders by scanning the message for menu item names with
// an optional leading quantity ("2 burger"). It trades recall for
// determinism: substring matches only, no model involved, never fails.
type Fallback struct{}

func NewFallback() *Fallback {
	return &Fallback{}
}

func (f *Fallback) Resolve(message string, menu []domain.MenuItem) domain.Resolution {
	lower := strings.ToLower(message)

	var items []domain.ResolvedLineItem
	for _, m := range menu {
		name := strings.ToLower(m.Name)
		if name == "" {
			continue
		}

		for idx := 0; ; {
			pos := strings.Index(lower[idx:], name)
			if pos < 0 {
				break
			}
			pos += idx

			items = append(items, domain.ResolvedLineItem{
				MenuItemID: m.ID,
				Name:       m.Name,
				UnitPrice:  m.Price,
				Quantity:   leadingQuantity(lower[:pos]),
			})

			idx = pos + len(name)
		}
	}

	if len(items) == 0 {
		return domain.Unresolvable()
	}

	return domain.OrderReady(items, domain.LineItemsTotal(items))
}

// leadingQuantity reads an integer immediately before the match, allowing
// whitespace between the number and the name. Missing or zero means 1.
func leadingQuantity(prefix string) int {
	i := len(prefix)
	for i > 0 && (prefix[i-1] == ' ' || prefix[i-1] == '\t') {
		i--
	}

	j := i
	for j > 0 && prefix[j-1] >= '0' && prefix[j-1] <= '9' {
		j--
	}
	if j == i {
		return 1
	}

	qty, err := strconv.Atoi(prefix[j:i])
	if err != nil || qty <= 0 {
		return 1
	}

	return qty
}
