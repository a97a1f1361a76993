package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) programResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(h.program)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) currentWeekResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	week := h.currentWeek(ctx)
	stats, err := h.stats(ctx)
	if err != nil {
		return nil, err
	}

	days := make([]map[string]any, 0, len(h.program.Days))
	for _, day := range h.program.Days {
		d := map[string]any{
			"day_id":  day.ID,
			"name":    day.Name,
			"percent": stats.DayProgress(week, day.ID),
			"volume":  stats.DayVolume(week, day.ID),
		}
		if minutes, logged := stats.SessionDuration(week, day.ID); logged {
			d["duration_minutes"] = minutes
		}
		days = append(days, d)
	}

	summary := map[string]any{
		"week":    week,
		"percent": stats.WeekProgress(week),
		"volume":  stats.WeekVolume(week),
		"days":    days,
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
