package console

import (
	"context"
	"fmt"
	"net/http"

	"mcp-quickclick/pkg/domain"
)

func (c *Client) dayOffsPath() string {
	return fmt.Sprintf("/eaa/console/%d/openingspecials", c.accountID)
}

// ListDayOffs returns the extra day-off records for the account.
func (c *Client) ListDayOffs(ctx context.Context) ([]domain.DayOff, error) {
	var dayOffs []domain.DayOff
	if err := c.do(ctx, http.MethodGet, c.dayOffsPath(), nil, &dayOffs); err != nil {
		return nil, err
	}
	return dayOffs, nil
}

type dayOffCreate struct {
	SpecialDate string `json:"specialDate"`
}

// AddDayOff records a new day off. The date must already be validated as
// YYYY-MM-DD by the tool layer.
func (c *Client) AddDayOff(ctx context.Context, date string) error {
	return c.do(ctx, http.MethodPost, c.dayOffsPath(), dayOffCreate{SpecialDate: date}, nil)
}

// DeleteDayOff removes a day off by its server-assigned id.
func (c *Client) DeleteDayOff(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", c.dayOffsPath(), id), nil, nil)
}
