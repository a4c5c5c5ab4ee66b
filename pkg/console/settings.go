package console

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"mcp-quickclick/pkg/domain"
)

func (c *Client) settingsPath() string {
	return fmt.Sprintf("/eaa/console/%d/settings", c.accountID)
}

// GetSettings returns the account settings record. The console replies with a
// list; the account record is its first element.
func (c *Client) GetSettings(ctx context.Context) (domain.Settings, error) {
	var settings []domain.Settings
	if err := c.do(ctx, http.MethodGet, c.settingsPath(), nil, &settings); err != nil {
		return domain.Settings{}, err
	}
	if len(settings) == 0 {
		return domain.Settings{}, domain.NewNotFoundError("get settings", "no settings returned for account")
	}
	return settings[0], nil
}

// settingsUpdate is the targeted single-key settings write the console
// accepts, so these operations need no read-modify-write step.
type settingsUpdate struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Label   string `json:"label"`
	DBTable string `json:"dbTable"`
}

// EnableOrdering toggles whether the shop accepts orders.
func (c *Client) EnableOrdering(ctx context.Context, enabled bool) error {
	value := "0"
	if enabled {
		value = "1"
	}
	return c.do(ctx, http.MethodPut, c.settingsPath(), settingsUpdate{
		Key:     "is_enabled_ordering",
		Value:   value,
		Label:   "Enable ordering",
		DBTable: "account_settings",
	}, nil)
}

// UpdateToGoWaitingTime sets the to-go waiting time in minutes.
func (c *Client) UpdateToGoWaitingTime(ctx context.Context, minutes int) error {
	return c.do(ctx, http.MethodPut, c.settingsPath(), settingsUpdate{
		Key:     "togo_waiting_time",
		Value:   strconv.Itoa(minutes),
		Label:   "To-go waiting time",
		DBTable: "account_settings",
	}, nil)
}
