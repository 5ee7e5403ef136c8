package formats

import (
	"path"
	"strings"
)

// ParseText wraps a bare layout file, the format the puzzle was first
// shipped with. The level id and name come from the file name.
func ParseText(data []byte, filename string) Level {
	base := path.Base(filename)
	id := strings.TrimSuffix(base, path.Ext(base))

	return Level{
		ID:     id,
		Name:   titleFromID(id),
		Layout: strings.TrimRight(string(data), "\r\n"),
	}
}

// titleFromID turns "03-long-way" into "Long Way".
func titleFromID(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})

	out := words[:0]
	for _, w := range words {
		if strings.Trim(w, "0123456789") == "" {
			continue
		}
		out = append(out, strings.ToUpper(w[:1])+w[1:])
	}
	if len(out) == 0 {
		return id
	}
	return strings.Join(out, " ")
}
