// Package resolver maps free-text order messages to structured line items
// against a kitchen's menu. The primary resolver asks the language model; the
// fallback resolver is a deterministic scan used when the model is
// unavailable or returns garbage.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"github.com/Anant2019/home-kitchen-app/internal/llm"
)

const orderPromptTemplate = `You are an order parser for a kitchen.
Menu: %s
User Message: %q

Extract items and quantities. Return a valid JSON object (no markdown) with:
- "items": list of { "id": item_id, "qty": quantity, "name": item_name, "price": item_price }
- "total": total cost (number)
- "clarification_needed": boolean (true if message is unclear or items not in menu)

If unclear, set "items": [] and "clarification_needed": true.`

type Primary struct {
	generator llm.Generator
}

func NewPrimary(generator llm.Generator) *Primary {
	return &Primary{generator: generator}
}

type promptMenuItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// model responses use pointers so an absent required field is detectable
type parsedOrder struct {
	Items               *[]parsedLineItem `json:"items"`
	Total               *float64          `json:"total"`
	ClarificationNeeded *bool             `json:"clarification_needed"`
}

type parsedLineItem struct {
	ID    int     `json:"id"`
	Qty   int     `json:"qty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Resolve asks the model to parse the message against the menu. Any failure
// (transport, malformed JSON, missing fields) is returned as an error so the
// caller can fall back; there are no retries at this layer.
func (p *Primary) Resolve(ctx context.Context, message string, menu []domain.MenuItem) (domain.Resolution, error) {
	prompt, err := buildOrderPrompt(message, menu)
	if err != nil {
		return domain.Resolution{}, err
	}

	raw, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		return domain.Resolution{}, fmt.Errorf("generation failed: %w", err)
	}

	cleaned := llm.StripCodeFences(raw)

	var parsed parsedOrder
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return domain.Resolution{}, fmt.Errorf("invalid model response: %w", err)
	}

	if parsed.Items == nil || parsed.Total == nil || parsed.ClarificationNeeded == nil {
		return domain.Resolution{}, fmt.Errorf("model response missing required fields")
	}

	// partial items alongside a clarification request are discarded
	if *parsed.ClarificationNeeded {
		return domain.NeedsClarification(), nil
	}

	items := make([]domain.ResolvedLineItem, 0, len(*parsed.Items))
	for _, li := range *parsed.Items {
		qty := li.Qty
		if qty <= 0 {
			qty = 1
		}
		items = append(items, domain.ResolvedLineItem{
			MenuItemID: li.ID,
			Name:       li.Name,
			UnitPrice:  int(li.Price),
			Quantity:   qty,
		})
	}

	// recompute the total from unit prices instead of trusting the model
	return domain.OrderReady(items, domain.LineItemsTotal(items)), nil
}

func buildOrderPrompt(message string, menu []domain.MenuItem) (string, error) {
	simplified := make([]promptMenuItem, 0, len(menu))
	for _, m := range menu {
		simplified = append(simplified, promptMenuItem{ID: m.ID, Name: m.Name, Price: m.Price})
	}

	menuJSON, err := json.Marshal(simplified)
	if err != nil {
		return "", fmt.Errorf("failed to marshal menu: %w", err)
	}

	return fmt.Sprintf(orderPromptTemplate, menuJSON, message), nil
}
