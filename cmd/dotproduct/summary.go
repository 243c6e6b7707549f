// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/dotbench/pkg/dotproduct"
)

var summaryStatuses = dotproduct.StatusValues()

// summary counts test cases per kind and status. Test cases rejected by the
// reader (unsupported data type or malformed vectors) are counted separately;
// those with an unsupported data type are under dotproduct.InvalidKind.
type summary struct {
	statuses map[dotproduct.Kind]map[dotproduct.Status]int
	rejected map[dotproduct.Kind]int
}

func newSummary() *summary {
	return &summary{
		statuses: make(map[dotproduct.Kind]map[dotproduct.Status]int),
		rejected: make(map[dotproduct.Kind]int),
	}
}

func (s *summary) add(kind dotproduct.Kind, status dotproduct.Status) {
	counts, found := s.statuses[kind]
	if !found {
		counts = make(map[dotproduct.Status]int)
		s.statuses[kind] = counts
	}
	counts[status]++
}

func (s *summary) reject(kind dotproduct.Kind) {
	s.rejected[kind]++
}

// total number of test cases for kind.
func (s *summary) total(kind dotproduct.Kind) int {
	total := s.rejected[kind]
	for _, count := range s.statuses[kind] {
		total += count
	}
	return total
}

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).PaddingLeft(1).PaddingRight(1)
	evenRowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

// Render the summary as a table. Kinds without test cases are omitted.
func (s *summary) Render() string {
	table := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (style lipgloss.Style) {
			if row == lgtable.HeaderRow {
				return headerRowStyle
			}
			if row%2 == 0 {
				style = oddRowStyle
			} else {
				style = evenRowStyle
			}
			if col == 0 {
				return style.Align(lipgloss.Left)
			}
			return style.Align(lipgloss.Right)
		})

	headers := []string{"Data type", "Cases"}
	for _, status := range summaryStatuses {
		headers = append(headers, status.String())
	}
	headers = append(headers, "Rejected")
	table.Headers(headers...)

	kinds := append([]dotproduct.Kind{}, dotproduct.Kinds...)
	kinds = append(kinds, dotproduct.InvalidKind)
	var grandTotal int
	for _, kind := range kinds {
		total := s.total(kind)
		if total == 0 {
			continue
		}
		grandTotal += total
		name := kind.Tag()
		if kind == dotproduct.InvalidKind {
			name = "(unsupported)"
		}
		row := []string{name, humanize.Comma(int64(total))}
		for _, status := range summaryStatuses {
			row = append(row, humanize.Comma(int64(s.statuses[kind][status])))
		}
		row = append(row, humanize.Comma(int64(s.rejected[kind])))
		table.Row(row...)
	}
	return titleStyle.Render("Summary: "+humanize.Comma(int64(grandTotal))+" test cases") + "\n" + table.Render()
}
