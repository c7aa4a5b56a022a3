package ui

import "fmt"

// FormatSize renders a byte count in kilobytes with one decimal, e.g. "12.3 KB"
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
}

// FormatBytes formats bytes into human readable format
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
