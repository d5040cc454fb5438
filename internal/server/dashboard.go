// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/pideck/pideck/internal/api/info"
)

var dashboardTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"mib":      func(b uint64) string { return fmt.Sprintf("%.1f MiB", float64(b)/(1<<20)) },
	"gib":      func(b uint64) string { return fmt.Sprintf("%.2f GiB", float64(b)/(1<<30)) },
	"percent":  func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	"duration": func(s uint64) string { return (time.Duration(s) * time.Second).String() },
}).Parse(dashboardHTML))

type dashboardData struct {
	Title    string
	Snapshot info.Snapshot
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !requireGet(w, r) {
		return
	}
	data := dashboardData{
		Title:    s.cfg.Title,
		Snapshot: s.cache.Get(r.Context()),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, data); err != nil {
		s.log.Error(err, "Error rendering dashboard")
	}
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="30">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; background: #fafafa; color: #222; }
h1 { font-size: 1.6em; }
h2 { font-size: 1.1em; border-bottom: 1px solid #ccc; padding-bottom: .2em; margin-top: 1.6em; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: .25em .75em .25em 0; font-size: .9em; }
th { color: #666; font-weight: 600; }
.err { color: #a00; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>

{{with .Snapshot}}
<h2>Board</h2>
<table>
<tr><th>Model</th><td>{{.Board.Model}}</td></tr>
<tr><th>Decoded</th><td>Raspberry Pi {{.Board.ModelName}} rev {{.Board.Revision}}, {{.Board.RAMMB}} MB, {{.Board.Manufacturer}}, {{.Board.Processor}}</td></tr>
<tr><th>Revision code</th><td>{{.Board.RevisionCode}} ({{.Board.Scheme}} scheme)</td></tr>
<tr><th>Serial</th><td>{{.Board.Serial}}</td></tr>
</table>

<h2>Host</h2>
<table>
<tr><th>Hostname</th><td>{{.Host.Hostname}}</td></tr>
<tr><th>OS</th><td>{{.Host.OSName}} ({{.Host.KernelVersion}}, {{.Host.Architecture}})</td></tr>
<tr><th>Uptime</th><td>{{duration .Host.UptimeSeconds}}</td></tr>
</table>

<h2>CPU</h2>
<table>
<tr><th>Model</th><td>{{.CPU.Model}} ({{.CPU.Cores}} cores)</td></tr>
<tr><th>Usage</th><td>{{percent .CPU.UsagePercent}}</td></tr>
<tr><th>Load</th><td>{{printf "%.2f %.2f %.2f" .CPU.Load1 .CPU.Load5 .CPU.Load15}}</td></tr>
<tr><th>Frequency</th><td>{{printf "%.0f MHz (min %.0f, max %.0f)" .CPU.FrequencyMHz.Current .CPU.FrequencyMHz.Minimum .CPU.FrequencyMHz.Maximum}}</td></tr>
{{if .CPU.TemperatureC}}<tr><th>Temperature</th><td>{{printf "%.1f °C" .CPU.TemperatureC}}</td></tr>{{end}}
{{if .CPU.CoreVoltage}}<tr><th>Core voltage</th><td>{{printf "%.4f V" .CPU.CoreVoltage}}</td></tr>{{end}}
{{with .CPU.Throttle}}
<tr><th>Throttle</th><td>
{{if .UnderVoltage}}<span class="err">undervoltage</span>{{end}}
{{if .Throttled}}<span class="err">throttled</span>{{end}}
{{if .FrequencyCapped}}<span class="err">frequency capped</span>{{end}}
{{if .SoftTempLimit}}<span class="err">soft temperature limit</span>{{end}}
{{if not (or .UnderVoltage .Throttled .FrequencyCapped .SoftTempLimit)}}ok{{end}}
</td></tr>
{{end}}
</table>

<h2>Memory</h2>
<table>
<tr><th>Used</th><td>{{mib .Memory.UsedBytes}} of {{mib .Memory.TotalBytes}} ({{percent .Memory.UsedPercent}})</td></tr>
<tr><th>Available</th><td>{{mib .Memory.AvailableBytes}}</td></tr>
{{if .Memory.SwapTotalBytes}}<tr><th>Swap</th><td>{{mib .Memory.SwapUsedBytes}} of {{mib .Memory.SwapTotalBytes}}</td></tr>{{end}}
</table>

<h2>Disks</h2>
<table>
<tr><th>Mountpoint</th><th>Device</th><th>Filesystem</th><th>Used</th><th>Total</th><th>Usage</th></tr>
{{range .Disks}}
<tr><td>{{.Mountpoint}}</td><td>{{.Device}}</td><td>{{.Filesystem}}</td><td>{{gib .UsedBytes}}</td><td>{{gib .TotalBytes}}</td><td>{{percent .UsedPercent}}</td></tr>
{{end}}
</table>

<h2>Network</h2>
<table>
<tr><th>Interface</th><th>Status</th><th>MAC</th><th>Addresses</th><th>Speed</th><th>Driver</th></tr>
{{range .Interfaces}}
<tr><td>{{.Name}}</td><td>{{.CarrierStatus}}</td><td>{{.MACAddress}}</td><td>{{range .IPAddresses}}{{.}} {{end}}</td><td>{{.Speed}}</td><td>{{.Driver}}</td></tr>
{{end}}
</table>

{{with .Wifi}}
<h2>Wifi ({{len .Networks}} networks, scanned {{.ScannedAt.Format "15:04:05"}})</h2>
<table>
<tr><th></th><th>SSID</th><th>Channel</th><th>Signal</th><th>Rate</th><th>Security</th></tr>
{{range .Networks}}
<tr><td>{{if .InUse}}*{{end}}</td><td>{{.SSID}}</td><td>{{.Channel}}</td><td>{{.Signal}}</td><td>{{.RateMbps}} Mbit/s</td><td>{{.Security}}</td></tr>
{{end}}
</table>
{{end}}

<h2>Top processes</h2>
<table>
<tr><th>PID</th><th>Command</th><th>User</th><th>CPU</th><th>Memory</th></tr>
{{range .Processes}}
<tr><td>{{.PID}}</td><td>{{.Command}}</td><td>{{.User}}</td><td>{{percent .CPUPercent}}</td><td>{{printf "%.1f%%" .MemPercent}}</td></tr>
{{end}}
</table>

{{if .Errors}}
<h2>Collection errors</h2>
<ul>
{{range .Errors}}<li class="err">{{.}}</li>{{end}}
</ul>
{{end}}
{{end}}
</body>
</html>
`
