package mcp

import (
	"context"

	"github.com/claude/ironforge/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Get the active training program: days, exercise slots, target sets, rep schemes and rest times."),
)

var toolGetWeekProgress = mcp.NewTool("get_week_progress",
	mcp.WithDescription("Completion percentage for a program week, overall and per day. Defaults to the user's current week."),
	mcp.WithNumber("week", mcp.Description("Program week (1-based). Defaults to the current week from settings.")),
)

var toolGetDayProgress = mcp.NewTool("get_day_progress",
	mcp.WithDescription("Completion and volume detail for one program day in a week, including per-exercise completed sets."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Day ID (e.g. day-push)")),
	mcp.WithNumber("week", mcp.Description("Program week (1-based). Defaults to the current week from settings.")),
)

var toolGetWeekVolume = mcp.NewTool("get_week_volume",
	mcp.WithDescription("Total training volume (sum of weight x reps) for a week, per day and overall, with the change versus the previous week when defined."),
	mcp.WithNumber("week", mcp.Description("Program week (1-based). Defaults to the current week from settings.")),
)

var toolCompareWeeks = mcp.NewTool("compare_weeks",
	mcp.WithDescription("Compare completion and volume between two program weeks."),
	mcp.WithNumber("week_a", mcp.Required(), mcp.Description("First week (1-based)")),
	mcp.WithNumber("week_b", mcp.Required(), mcp.Description("Second week (1-based)")),
)

var toolGetSessionDurations = mcp.NewTool("get_session_durations",
	mcp.WithDescription("Logged workout durations in minutes across all program weeks, optionally for one day."),
	mcp.WithString("day", mcp.Description("Day ID filter (e.g. day-legs). Omit for all days.")),
)

var toolGetMeasurements = mcp.NewTool("get_measurements",
	mcp.WithDescription("Body measurement log (weight, body fat, circumferences), newest first."),
	mcp.WithNumber("limit", mcp.Description("Maximum records to return. Defaults to 30.")),
)

// --- Tool handlers ---

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.program)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeekProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week := req.GetInt("week", h.currentWeek(ctx))
	if week < 1 || week > h.program.DurationWeeks {
		return mcp.NewToolResultError("week outside program range"), nil
	}

	stats, err := h.stats(ctx)
	if err != nil {
		h.log.Error("mcp get_week_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	days := make([]map[string]any, 0, len(h.program.Days))
	for _, day := range h.program.Days {
		days = append(days, map[string]any{
			"day_id":  day.ID,
			"name":    day.Name,
			"percent": stats.DayProgress(week, day.ID),
		})
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"week":    week,
		"percent": stats.WeekProgress(week),
		"days":    days,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getDayProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dayID, err := req.RequireString("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	day, ok := h.program.Day(dayID)
	if !ok {
		return mcp.NewToolResultError("unknown day: " + dayID), nil
	}
	week := req.GetInt("week", h.currentWeek(ctx))
	if week < 1 || week > h.program.DurationWeeks {
		return mcp.NewToolResultError("week outside program range"), nil
	}

	stats, err := h.stats(ctx)
	if err != nil {
		h.log.Error("mcp get_day_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	exercises := make([]map[string]any, 0, len(day.Exercises))
	for _, slot := range day.Exercises {
		exercises = append(exercises, map[string]any{
			"slot_id":        slot.ID,
			"name":           slot.Name,
			"target_sets":    slot.Sets,
			"completed_sets": stats.CompletedSets(week, day.ID, slot.ID, slot.Sets),
		})
	}

	detail := map[string]any{
		"week":      week,
		"day_id":    day.ID,
		"name":      day.Name,
		"percent":   stats.DayProgress(week, day.ID),
		"volume":    stats.DayVolume(week, day.ID),
		"exercises": exercises,
	}
	if minutes, logged := stats.SessionDuration(week, day.ID); logged {
		detail["duration_minutes"] = minutes
	}

	result, err := mcp.NewToolResultJSON(detail)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeekVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week := req.GetInt("week", h.currentWeek(ctx))
	if week < 1 || week > h.program.DurationWeeks {
		return mcp.NewToolResultError("week outside program range"), nil
	}

	stats, err := h.stats(ctx)
	if err != nil {
		h.log.Error("mcp get_week_volume", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	days := make([]map[string]any, 0, len(h.program.Days))
	for _, day := range h.program.Days {
		days = append(days, map[string]any{
			"day_id": day.ID,
			"volume": stats.DayVolume(week, day.ID),
		})
	}

	resp := map[string]any{
		"week":  week,
		"total": stats.WeekVolume(week),
		"days":  days,
	}
	if week > 1 {
		prev := stats.WeekVolume(week - 1)
		resp["previous_total"] = prev
		if pct, defined := workout.VolumeDelta(stats.WeekVolume(week), prev); defined {
			resp["delta_percent"] = pct
		}
	}

	result, err := mcp.NewToolResultJSON(resp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) compareWeeks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weekA, err := req.RequireInt("week_a")
	if err != nil {
		return mcp.NewToolResultError("week_a parameter is required"), nil
	}
	weekB, err := req.RequireInt("week_b")
	if err != nil {
		return mcp.NewToolResultError("week_b parameter is required"), nil
	}
	if weekA < 1 || weekA > h.program.DurationWeeks || weekB < 1 || weekB > h.program.DurationWeeks {
		return mcp.NewToolResultError("week outside program range"), nil
	}

	stats, err := h.stats(ctx)
	if err != nil {
		h.log.Error("mcp compare_weeks", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	volumeA := stats.WeekVolume(weekA)
	volumeB := stats.WeekVolume(weekB)
	resp := map[string]any{
		"week_a": map[string]any{"week": weekA, "percent": stats.WeekProgress(weekA), "volume": volumeA},
		"week_b": map[string]any{"week": weekB, "percent": stats.WeekProgress(weekB), "volume": volumeB},
	}
	if pct, defined := workout.VolumeDelta(volumeB, volumeA); defined {
		resp["volume_delta_percent"] = pct
	}

	result, err := mcp.NewToolResultJSON(resp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSessionDurations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dayFilter := req.GetString("day", "")
	if dayFilter != "" {
		if _, ok := h.program.Day(dayFilter); !ok {
			return mcp.NewToolResultError("unknown day: " + dayFilter), nil
		}
	}

	stats, err := h.stats(ctx)
	if err != nil {
		h.log.Error("mcp get_session_durations", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	var sessions []map[string]any
	for week := 1; week <= h.program.DurationWeeks; week++ {
		for _, day := range h.program.Days {
			if dayFilter != "" && day.ID != dayFilter {
				continue
			}
			if minutes, logged := stats.SessionDuration(week, day.ID); logged {
				sessions = append(sessions, map[string]any{
					"week":             week,
					"day_id":           day.ID,
					"duration_minutes": minutes,
				})
			}
		}
	}

	result, err := mcp.NewToolResultJSON(map[string]any{"sessions": sessions})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getMeasurements(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 30)
	if limit < 0 {
		return mcp.NewToolResultError("limit must be >= 0"), nil
	}

	measurements, err := h.db.QueryMeasurements(ctx, h.userID, limit)
	if err != nil {
		h.log.Error("mcp get_measurements", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(measurements)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
