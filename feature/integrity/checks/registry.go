package checks

import (
	"mod-compat/core/checksum"
	"mod-compat/core/plugin"
	"mod-compat/core/wire"

	"github.com/dustin/go-humanize"
)

// RegistryReport tells whether the local inventory fits the lobby metadata budget.
type RegistryReport struct {
	Plugins     int      `json:"plugins"`
	Required    int      `json:"required"`
	Checksum    string   `json:"checksum"`
	Budget      string   `json:"budget"`
	Pages       int      `json:"pages"`
	PageSizes   []string `json:"page_sizes"`
	Encoded     int      `json:"encoded"`
	Dropped     []string `json:"dropped"`
	Publishable bool     `json:"publishable"`
}

// CheckRegistry encodes the inventory and reports page usage and dropped plugins.
// Variable levels are reported unresolved.
func CheckRegistry(records []plugin.Record, encoder *wire.Encoder) RegistryReport {
	report := encoder.EncodeReport(records)

	out := RegistryReport{
		Plugins:     len(records),
		Checksum:    checksum.Compute(records),
		Budget:      humanize.Bytes(uint64(encoder.PageBudget)),
		Pages:       len(report.Pages),
		PageSizes:   make([]string, 0, len(report.Pages)),
		Encoded:     report.Encoded,
		Dropped:     []string{},
		Publishable: len(report.Dropped) == 0,
	}
	for _, rec := range records {
		if rec.Level == plugin.LevelEveryone {
			out.Required++
		}
	}
	for _, page := range report.Pages {
		out.PageSizes = append(out.PageSizes, humanize.Bytes(uint64(len(page))))
	}
	if len(report.Dropped) > 0 {
		out.Dropped = report.Dropped
	}
	return out
}
