package importer

import "strings"

// splitFields tokenizes one CSV line. A field opening with a double quote
// is consumed verbatim up to the closing quote, with "" inside standing
// for one literal quote; anything between the closing quote and the next
// comma is discarded. An unquoted field runs to the next comma and is
// trimmed of surrounding whitespace. Quote and comma are ASCII, so byte
// scanning is safe for UTF-8 content.
func splitFields(line string) []string {
	var fields []string
	n := len(line)
	i := 0
	for {
		if i < n && line[i] == '"' {
			var sb strings.Builder
			i++
			for i < n {
				if line[i] == '"' {
					if i+1 < n && line[i+1] == '"' {
						sb.WriteByte('"')
						i += 2
						continue
					}
					i++
					break
				}
				sb.WriteByte(line[i])
				i++
			}
			for i < n && line[i] != ',' {
				i++
			}
			fields = append(fields, sb.String())
		} else {
			start := i
			for i < n && line[i] != ',' {
				i++
			}
			fields = append(fields, strings.TrimSpace(line[start:i]))
		}
		if i >= n {
			break
		}
		i++ // step over the comma
		if i == n {
			// trailing comma: one final empty field
			fields = append(fields, "")
			break
		}
	}
	return fields
}
