package docx

import (
	"html"
	"regexp"
	"sort"
	"strings"
)

var (
	// a {{...}} action whose characters may be spread over several runs
	splitAction = regexp.MustCompile(`\{(?:<[^>]*>)*\{(?:[^{}<]|<[^>]*>)*?\}(?:<[^>]*>)*\}`)
	anyTag      = regexp.MustCompile(`<[^>]*>`)
	rowAction   = regexp.MustCompile(`\{\{-?\s*tr\s+(.*?)\s*-?\}\}`)
	textRun     = regexp.MustCompile(`<w:t(?:\s[^>]*)?>([^<]*)</w:t>`)
	paragraph   = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	rowTag      = regexp.MustCompile(`<w:tr[ >]|<w:tr/>|</w:tr>`)
)

// healPlaceholders joins actions Word split across runs. The text of the action is
// kept in the first run and the tags that interrupted it follow it unchanged.
func healPlaceholders(xml string) string {
	return splitAction.ReplaceAllStringFunc(xml, func(m string) string {
		tags := anyTag.FindAllString(m, -1)
		text := html.UnescapeString(anyTag.ReplaceAllString(m, ""))
		return text + strings.Join(tags, "")
	})
}

// hoistRowActions replaces each table row holding a {{tr ...}} marker by the bare action
func hoistRowActions(xml string) string {
	for {
		loc := rowAction.FindStringSubmatchIndex(xml)
		if loc == nil {
			return xml
		}
		action := "{{" + xml[loc[2]:loc[3]] + "}}"

		r, ok := innermostRow(tableRows(xml), loc[0])
		if !ok {
			// not inside a table, keep the action in place
			xml = xml[:loc[0]] + action + xml[loc[1]:]
			continue
		}
		xml = xml[:r.start] + action + xml[r.end:]
	}
}

type span struct {
	start, end int
}

func (s span) contains(o span) bool {
	return s.start <= o.start && o.end <= s.end
}

// tableRows returns every <w:tr> element, nested rows included
func tableRows(xml string) []span {
	var rows []span
	var stack []int
	for _, loc := range rowTag.FindAllStringIndex(xml, -1) {
		tag := xml[loc[0]:loc[1]]
		switch {
		case tag == "<w:tr/>":
			rows = append(rows, span{loc[0], loc[1]})
		case strings.HasPrefix(tag, "</"):
			if len(stack) == 0 {
				continue
			}
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			rows = append(rows, span{start, loc[1]})
		default:
			stack = append(stack, loc[0])
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].start < rows[j].start })
	return rows
}

func innermostRow(rows []span, pos int) (span, bool) {
	best, found := span{}, false
	for _, r := range rows {
		if r.start <= pos && pos < r.end && (!found || best.contains(r)) {
			best, found = r, true
		}
	}
	return best, found
}

func runText(fragment string) string {
	var b strings.Builder
	for _, m := range textRun.FindAllStringSubmatch(fragment, -1) {
		b.WriteString(m[1])
	}
	return html.UnescapeString(b.String())
}

// RemoveEmptyTableRows deletes every table row whose text is empty or whitespace.
// It returns the number of rows removed.
func (d *Document) RemoveEmptyTableRows() int {
	xml := d.XML()

	var empty []span
	for _, r := range tableRows(xml) {
		if strings.TrimSpace(runText(xml[r.start:r.end])) == "" {
			empty = append(empty, r)
		}
	}

	// an empty outer row already covers its nested rows
	var outer []span
	for _, r := range empty {
		if len(outer) > 0 && outer[len(outer)-1].contains(r) {
			continue
		}
		outer = append(outer, r)
	}

	var b strings.Builder
	last := 0
	for _, r := range outer {
		b.WriteString(xml[last:r.start])
		last = r.end
	}
	b.WriteString(xml[last:])

	d.setXML(b.String())
	return len(outer)
}
