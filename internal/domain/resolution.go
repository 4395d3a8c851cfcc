package domain

import (
	"fmt"
	"strings"
)

// ResolvedLineItem is pipeline-internal; it is only ever folded into an
// order's summary and total, never persisted on its own.
type ResolvedLineItem struct {
	MenuItemID int    `json:"id"`
	Name       string `json:"name"`
	UnitPrice  int    `json:"price"`
	Quantity   int    `json:"qty"`
}

type ResolutionOutcome string

const (
	OutcomeOrderReady         ResolutionOutcome = "order_ready"
	OutcomeNeedsClarification ResolutionOutcome = "needs_clarification"
	OutcomeUnresolvable       ResolutionOutcome = "unresolvable"
)

type Resolution struct {
	Outcome ResolutionOutcome
	Items   []ResolvedLineItem
	Total   int
}

func OrderReady(items []ResolvedLineItem, total int) Resolution {
	return Resolution{Outcome: OutcomeOrderReady, Items: items, Total: total}
}

func NeedsClarification() Resolution {
	return Resolution{Outcome: OutcomeNeedsClarification}
}

func Unresolvable() Resolution {
	return Resolution{Outcome: OutcomeUnresolvable}
}

// ItemsSummary renders line items in order as "2x burger, 1x fries".
func ItemsSummary(items []ResolvedLineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
	}

	return strings.Join(parts, ", ")
}

// LineItemsTotal recomputes the order total from unit prices rather than
// trusting a total reported by the model.
func LineItemsTotal(items []ResolvedLineItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity * item.UnitPrice
	}

	return total
}
