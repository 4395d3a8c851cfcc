package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

// ParseMenu reads menu rows from a spreadsheet. Expected columns:
// A name, B price (smallest currency unit), C description, D image keyword.
// The first row is a header. Item ids are assigned by row order since a
// sheet import replaces the kitchen's whole menu.
func (p *GoogleSheetsParser) ParseMenu(ctx context.Context, spreadsheetID string) ([]domain.MenuItem, error) {
	readRange := "A:D"
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	items := []domain.MenuItem{}

	// skip header
	for i := 1; i < len(resp.Values); i++ {
		row := resp.Values[i]
		if len(row) < 2 {
			continue
		}

		name := strings.TrimSpace(fmt.Sprintf("%v", row[0]))
		if name == "" {
			continue
		}

		price, err := parsePrice(fmt.Sprintf("%v", row[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		item := domain.MenuItem{
			ID:    len(items) + 1,
			Name:  name,
			Price: price,
		}

		if len(row) > 2 {
			item.Description = strings.TrimSpace(fmt.Sprintf("%v", row[2]))
		}
		if len(row) > 3 {
			item.Img = strings.TrimSpace(fmt.Sprintf("%v", row[3]))
		}

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no menu items found in spreadsheet")
	}

	return items, nil
}

func parsePrice(raw string) (int, error) {
	raw = strings.TrimSpace(raw)

	if price, err := strconv.Atoi(raw); err == nil {
		if price < 0 {
			return 0, fmt.Errorf("negative price %d", price)
		}
		return price, nil
	}

	// sheets sometimes hand back numbers formatted as floats
	priceFloat, err := strconv.ParseFloat(raw, 64)
	if err != nil || priceFloat < 0 {
		return 0, fmt.Errorf("invalid price %q", raw)
	}

	return int(priceFloat), nil
}
