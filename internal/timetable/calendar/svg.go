package calendar

import (
	"fmt"
	"strings"
)

// blockInset is the horizontal margin between a block and its day column.
const blockInset = 4.0

// RenderSVG emits the weekly grid as a standalone SVG document: background,
// day-name header band, hourly gridlines with labels, day dividers, then one
// rounded rectangle with two centered text lines per positioned block.
func RenderSVG(layout Layout, cfg Config) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)

	// Background and header band.
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="#FFFFFF"/>`+"\n", cfg.Width, cfg.Height)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="#F2F2F2"/>`+"\n", cfg.Width, cfg.HeaderHeight)

	colWidth := float64(cfg.Width-cfg.TimeColWidth) / 5

	// Day names centered over their columns.
	for i, name := range dayNames {
		x := float64(cfg.TimeColWidth) + (float64(i)+0.5)*colWidth
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" text-anchor="middle" font-family="Helvetica, Arial, sans-serif" font-size="15" font-weight="bold" fill="#333333">%s</text>`+"\n",
			x, cfg.HeaderHeight-18, name)
	}

	// Hourly gridlines with labels down the time column.
	for h := cfg.StartHour; h <= cfg.EndHour; h++ {
		y := cfg.HeaderHeight + (h-cfg.StartHour)*cfg.HourHeight
		fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#DDDDDD" stroke-width="1"/>`+"\n",
			cfg.TimeColWidth, y, cfg.Width, y)
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="end" font-family="Helvetica, Arial, sans-serif" font-size="12" fill="#888888">%s</text>`+"\n",
			cfg.TimeColWidth-8, y+4, formatHour(h))
	}

	// Vertical day dividers.
	for i := 0; i <= 5; i++ {
		x := float64(cfg.TimeColWidth) + float64(i)*colWidth
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="#DDDDDD" stroke-width="1"/>`+"\n",
			x, cfg.HeaderHeight, x, cfg.Height)
	}

	for day := 0; day < 5; day++ {
		for _, blk := range layout.Days[day] {
			x := float64(cfg.TimeColWidth) + float64(day)*colWidth + blockInset
			y := float64(cfg.HeaderHeight) + (float64(blk.StartMin)/60-float64(cfg.StartHour))*float64(cfg.HourHeight)
			w := colWidth - 2*blockInset
			h := float64(blk.EndMin-blk.StartMin) / 60 * float64(cfg.HourHeight)

			fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="%s" fill-opacity="0.9"/>`+"\n",
				x, y, w, h, blk.Color)
			fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-family="Helvetica, Arial, sans-serif" font-size="12" font-weight="bold" fill="#FFFFFF">%s</text>`+"\n",
				x+w/2, y+h/2-3, escapeText(blk.Label))
			fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-family="Helvetica, Arial, sans-serif" font-size="10" fill="#FFFFFF">%s</text>`+"\n",
				x+w/2, y+h/2+11, formatSpan(blk.StartMin, blk.EndMin))
		}
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}

// formatHour renders an axis label in 12-hour form: 8AM, 12PM, 7PM.
func formatHour(h int) string {
	suffix := "AM"
	display := h
	if h >= 12 {
		suffix = "PM"
		if h > 12 {
			display = h - 12
		}
	}
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d%s", display, suffix)
}

// formatSpan abbreviates a block's time range with the AM/PM suffixes
// stripped, e.g. "10:10-11:25".
func formatSpan(startMin, endMin int) string {
	return fmt.Sprintf("%s-%s", formatClock(startMin), formatClock(endMin))
}

func formatClock(min int) string {
	h := min / 60 % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d", h, min%60)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
