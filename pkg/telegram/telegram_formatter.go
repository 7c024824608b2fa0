package telegram

import (
	"fmt"
	"strings"

	"golang-stock-ideas/internal/entity"
)

const recentUpdatesInNotice = 3

// FormatPublishedIdea renders the notice sent when an idea goes live.
func FormatPublishedIdea(idea *entity.StockIdea) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s *New %s idea: %s* (%s)\n", actionIcon(idea.Action), strings.ToUpper(string(idea.Term)), escape(idea.Symbol), idea.Exchange))
	if idea.StockName != "" {
		sb.WriteString(fmt.Sprintf("🏢 %s\n", escape(idea.StockName)))
	}
	sb.WriteString(fmt.Sprintf("📌 *Action:* %s\n", idea.Action))
	sb.WriteString(fmt.Sprintf("💰 *Entry:* %s\n", formatEntry(idea)))
	sb.WriteString(fmt.Sprintf("🎯 *Target:* %s\n", formatPrice(idea.TargetPrice)))
	sb.WriteString(fmt.Sprintf("🛡 *Stoploss:* %s\n", formatPrice(idea.Stoploss)))
	if idea.PotentialLeftPct != 0 {
		sb.WriteString(fmt.Sprintf("📈 *Potential:* %.2f%%\n", idea.PotentialLeftPct))
	}
	if idea.DurationText != "" {
		sb.WriteString(fmt.Sprintf("⏳ *Duration:* %s\n", escape(idea.DurationText)))
	}
	if idea.Reason != "" {
		sb.WriteString(fmt.Sprintf("\n💬 %s\n", escape(idea.Reason)))
	}
	if idea.ResearchReportURL != nil {
		sb.WriteString(fmt.Sprintf("\n📄 [Research report](%s)\n", *idea.ResearchReportURL))
	}

	return sb.String()
}

// FormatAmendedIdea renders the notice for a published idea whose stoploss, target or duration moved.
func FormatAmendedIdea(idea *entity.StockIdea, flags entity.ModifiedFlags) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("✏️ *Update: %s* (%s)\n", escape(idea.Symbol), idea.Exchange))
	if flags.StoplossChanged {
		sb.WriteString(fmt.Sprintf("🛡 *Stoploss:* %s\n", formatChange(idea.Baseline, func(b *entity.Baseline) string { return formatPrice(b.Stoploss) }, formatPrice(idea.Stoploss))))
	}
	if flags.TargetPriceChanged {
		sb.WriteString(fmt.Sprintf("🎯 *Target:* %s\n", formatChange(idea.Baseline, func(b *entity.Baseline) string { return formatPrice(b.TargetPrice) }, formatPrice(idea.TargetPrice))))
	}
	if flags.DurationChanged {
		sb.WriteString(fmt.Sprintf("⏳ *Duration:* %s\n", formatChange(idea.Baseline, func(b *entity.Baseline) string { return escape(b.DurationText) }, escape(idea.DurationText))))
	}

	recent := entity.RecentUpdates(idea.Actions, recentUpdatesInNotice)
	if len(recent) > 0 {
		sb.WriteString("\n*Recent updates*\n")
		for _, a := range recent {
			sb.WriteString(fmt.Sprintf("• %s\n", escape(entity.FormatTradeAction(a))))
		}
	}
	return sb.String()
}

// FormatArchivedIdea renders the exit notice.
func FormatArchivedIdea(idea *entity.StockIdea) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🏁 *Exit: %s* (%s)\n", escape(idea.Symbol), idea.Exchange))
	if idea.ExitPrice != nil {
		sb.WriteString(fmt.Sprintf("💵 *Exit price:* %s\n", formatPrice(*idea.ExitPrice)))
	}
	if idea.ExitDate != nil {
		exitAt := *idea.ExitDate
		if idea.ExitTime != nil {
			exitAt += " " + *idea.ExitTime
		}
		sb.WriteString(fmt.Sprintf("🗓 *Exit at:* %s\n", exitAt))
	}
	if idea.ProfitEarned != nil && *idea.ProfitEarned != "" {
		sb.WriteString(fmt.Sprintf("📊 *Result:* %s\n", escape(*idea.ProfitEarned)))
	}
	return sb.String()
}

func actionIcon(action entity.Action) string {
	switch action {
	case entity.ActionBuy:
		return "🟢"
	case entity.ActionSell:
		return "🔴"
	default:
		return "🟡"
	}
}

func formatEntry(idea *entity.StockIdea) string {
	if idea.EntryRangeMin != nil && idea.EntryRangeMax != nil && *idea.EntryRangeMin > 0 && *idea.EntryRangeMax > 0 {
		return fmt.Sprintf("%s (%s - %s)", formatPrice(idea.EntryPrice), formatPrice(*idea.EntryRangeMin), formatPrice(*idea.EntryRangeMax))
	}
	return formatPrice(idea.EntryPrice)
}

func formatChange(baseline *entity.Baseline, old func(*entity.Baseline) string, current string) string {
	if baseline == nil {
		return current
	}
	return fmt.Sprintf("%s ➜ %s", old(baseline), current)
}

func formatPrice(v float64) string {
	return fmt.Sprintf("%g", v)
}

// escape neutralizes the legacy Markdown control characters.
func escape(s string) string {
	return markdownEscaper.Replace(s)
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")
