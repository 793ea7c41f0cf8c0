package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

// applyScene is the single render entry point. Every call re-derives all
// UI regions from the payload; nothing is diffed against the previous
// turn. Dead-end detection runs first because the map panels read the
// dead-end memory.
func (m *Model) applyScene(p *scene.Payload, echo string) {
	if p == nil {
		return
	}
	m.detectDeadEnd(p, echo)
	m.scenePayload = p

	m.rebuildOutput(p, echo)
	m.header = buildHeader(p)
	m.rebuildCharSheet(p)
	m.rebuildPanels(p)
	m.rebuildZonePanel(p)
	m.rebuildVPad(p)
	m.saveVisible = p.CanSaveInCity
	m.updateInventoryForScene(p, echo)
}

// detectDeadEnd records a blocked exit when a "go" attempt bounced off
// the server. Key format: "<locationID>_<direction>", direction
// lowercased.
func (m *Model) detectDeadEnd(p *scene.Payload, echo string) {
	if !strings.HasPrefix(strings.ToLower(echo), "go ") {
		return
	}
	if !strings.HasPrefix(strings.ToLower(p.Message), "you can't go") {
		return
	}
	fields := strings.Fields(echo)
	if len(fields) < 2 || p.CurrentLocationID == "" {
		return
	}
	direction := strings.ToLower(fields[1])
	m.sess.RecordDeadEnd(p.CurrentLocationID, direction)
	m.logger.Debug("discovered dead end",
		"location", p.CurrentLocationID, "direction", direction)
}

// rebuildOutput clears and repopulates the output log for one turn:
// echoed command, location/HP summary, description, message, then any
// pre-formatted map lines.
func (m *Model) rebuildOutput(p *scene.Payload, echo string) {
	m.outputLines = m.outputLines[:0]

	if echo != "" {
		m.outputLines = append(m.outputLines, logLine{lineEcho, "> " + echo})
	}
	if p.LocationName != "" {
		summary := fmt.Sprintf("--- %s (HP: %s/%s)", p.LocationName,
			fmtOptInt(p.PlayerHP), fmtOptInt(p.PlayerMaxHP))
		if p.PlayerName != "" {
			summary += " (" + p.PlayerName + ")"
		}
		m.outputLines = append(m.outputLines, logLine{lineSummary, summary})
	}
	if p.Description != "" {
		m.outputLines = append(m.outputLines, logLine{lineDescription, p.Description})
	}
	if strings.TrimSpace(p.Message) != "" {
		m.outputLines = append(m.outputLines, logLine{lineMessage, p.Message})
	}
	for _, line := range p.MapLines {
		m.outputLines = append(m.outputLines, logLine{lineMap, line})
	}
	m.refreshOutput()
}

// appendLine adds one line without clearing the log.
func (m *Model) appendLine(kind lineKind, text string) {
	m.outputLines = append(m.outputLines, logLine{kind, text})
	m.refreshOutput()
}

// refreshOutput reflows the log into the viewport and scrolls to the
// bottom.
func (m *Model) refreshOutput() {
	width := m.output.Width - 2
	if width < 10 {
		width = 10
	}

	var b strings.Builder
	for _, line := range m.outputLines {
		text := line.text
		if line.kind != lineMap { // map lines keep their exact spacing
			text = wordwrap.String(text, width)
		}
		b.WriteString(styleLine(line.kind, text))
		b.WriteString("\n")
	}
	m.output.SetContent(b.String())
	m.output.GotoBottom()
}

func styleLine(kind lineKind, text string) string {
	switch kind {
	case lineEcho:
		return echoStyle.Render(text)
	case lineSummary:
		return headerStyle.Render(text)
	case lineMessage:
		return messageStyle.Render(text)
	case lineAttempt:
		return attemptStyle.Render(text)
	case lineError:
		return errorStyle.Render(text)
	case lineInfo:
		return promptStyle.Render(text)
	default:
		return text
	}
}

// buildHeader derives the one-line summary above the output log. Missing
// numeric fields render as "N/A".
func buildHeader(p *scene.Payload) string {
	location := p.LocationName
	if location == "" {
		location = "Unknown"
	}
	player := p.PlayerName
	if player == "" {
		player = "Adventurer"
	}
	return fmt.Sprintf("Location: %s | Player: %s - Level: %s (XP: %s/%s) - Coins: %s",
		location, player,
		fmtOptInt(p.PlayerLevel),
		fmtOptInt(p.PlayerXP), fmtOptInt(p.PlayerXPToNext),
		scene.FormatCoinsPtr(p.PlayerCoins))
}

func fmtOptInt(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}
